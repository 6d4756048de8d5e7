package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tarc-io/tarc/config"
)

func history(c *cli.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, c, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListScanRuns(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No scan runs recorded.")
		return nil
	}

	for _, run := range runs {
		duration := ""
		if run.FinishedAt != nil {
			duration = run.FinishedAt.Sub(run.StartedAt).String()
		}

		fmt.Printf("#%d  client:%d  %s  %-7s  torrents:%d  files added:%d  %s\n",
			run.ID,
			run.ClientID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Status,
			run.TorrentsSeen,
			run.FilesAdded,
			duration,
		)
	}

	return nil
}
