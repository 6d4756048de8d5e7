package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tarc-io/tarc/config"
	"github.com/tarc-io/tarc/qbit"
	"github.com/tarc-io/tarc/tracker"
	"github.com/tarc-io/tarc/tracker/db"
)

func scan(c *cli.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(c.Bool("debug"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// the schema guard runs before anything else, including the stubbed
	// --directory path
	store, err := openStore(ctx, c, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if c.String("directory") != "" {
		fmt.Println("[INFO]: --directory is not implemented")
		return nil
	}

	clientName := c.String("name")
	if clientName == "" {
		clientName = cfg.DefaultClient
	}
	if clientName == "" {
		return errors.New("Must specify --directory or --name")
	}

	mergeKeyName := c.String("merge-key")
	if mergeKeyName == "" {
		mergeKeyName = cfg.MergeKey
	}

	mergeKey, err := db.ParseMergeKey(mergeKeyName)
	if err != nil {
		return err
	}

	client, err := store.GetClientByName(ctx, clientName)
	if err != nil {
		return err
	}

	qb, err := qbit.NewClient(client.Endpoint, newHTTPClient())
	if err != nil {
		return err
	}

	username, password, err := credentials(c)
	if err != nil {
		return err
	}

	// endpoints with localhost auth bypass are scanned without a login
	if username != "" {
		err = qb.Login(ctx, username, password)
		if err != nil {
			return err
		}
	}

	track := tracker.NewTracker(qb, store, logger, tracker.WithMergeKey(mergeKey))

	summary, err := track.Scan(ctx, client)
	if err != nil {
		return err
	}

	fmt.Printf("[INFO]: Found qbittorrent %s at %q\n", summary.RemoteVersion, client.Endpoint)
	fmt.Printf("[INFO]: There are %d torrents\n", len(summary.Results))

	for _, res := range summary.Results {
		if res.FilesAdded > 0 {
			fmt.Printf("[INFO]: Changed %s (+%d files)\n", res.InfoHash, res.FilesAdded)
		} else {
			fmt.Printf("[INFO]: Checked %s, nothing new\n", res.InfoHash)
		}
	}

	return nil
}
