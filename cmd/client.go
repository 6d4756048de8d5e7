package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tarc-io/tarc/config"
	"github.com/tarc-io/tarc/qbit"
	"github.com/tarc-io/tarc/tracker"
)

func clientAdd(c *cli.Context) error {
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

	endpoint := c.String("endpoint")

	qb, err := qbit.NewClient(endpoint, newHTTPClient())
	if err != nil {
		return err
	}

	username, password, err := credentials(c)
	if err != nil {
		return err
	}

	if username != "" {
		err = qb.Login(ctx, username, password)
		if err != nil {
			return err
		}
	}

	// the endpoint must prove it is a sane daemon before it is registered
	version, err := qb.AppVersion(ctx)
	if err != nil {
		return err
	}

	err = tracker.ValidateRemoteVersion(version)
	if err != nil {
		return err
	}

	fmt.Printf("[INFO]: Found qbittorrent %s at %q\n", version, endpoint)

	client, err := store.AddClient(ctx, c.String("name"), endpoint, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Printf("[INFO]: Added client %s (%s)\n", client.Name, client.Endpoint)

	return nil
}

func clientList(c *cli.Context) error {
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

	clients, err := store.ListClients(ctx)
	if err != nil {
		return err
	}

	if len(clients) == 0 {
		fmt.Println("No clients registered.")
		return nil
	}

	for _, client := range clients {
		fmt.Printf("%-20s  %-40s  %s  last seen %s\n",
			client.Name,
			client.Endpoint,
			client.UUID,
			client.LastSeen.Format("2006-01-02 15:04:05"),
		)
	}

	return nil
}
