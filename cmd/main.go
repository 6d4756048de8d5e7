package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// daemon credentials commonly live in a .env next to the tool
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "tarc",
		Usage: "manage BitTorrent-distributed dataset archives",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "storage",
				Aliases: []string{"s"},
				EnvVars: []string{"TARC_STORAGE"},
				Usage:   "path of the sqlite3 database (created on first use; defaults to ~/.tarch.db)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"TARC_DEBUG"},
				Usage:   "enable debug logging",
			},
		},

		Commands: []*cli.Command{
			{
				Name:   "scan",
				Usage:  "reconcile a download client's live contents into the store",
				Action: scan,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						EnvVars: []string{"TARC_CLIENT"},
						Usage:   "name of a registered client",
					},
					&cli.StringFlag{
						Name:    "directory",
						Aliases: []string{"d"},
						Usage:   "directory to scan",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "scan type",
					},
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						EnvVars: []string{"TARC_USERNAME"},
						Usage:   "download client username",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						EnvVars: []string{"TARC_PASSWORD"},
						Usage:   "download client password (prompted when omitted)",
					},
					&cli.StringFlag{
						Name:    "merge-key",
						EnvVars: []string{"TARC_MERGE_KEY"},
						Usage:   "file merge key: path (historical) or tuple",
					},
				},
			},
			{
				Name:  "client",
				Usage: "manage registered download clients",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "verify a download client endpoint and register it",
						Action: clientAdd,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "unique name for the client",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "endpoint",
								Aliases:  []string{"e"},
								Usage:    "Web UI endpoint URL, e.g. http://seedbox.example.net:8080",
								Required: true,
							},
							&cli.StringFlag{
								Name:    "username",
								Aliases: []string{"u"},
								EnvVars: []string{"TARC_USERNAME"},
								Usage:   "download client username",
							},
							&cli.StringFlag{
								Name:    "password",
								Aliases: []string{"p"},
								EnvVars: []string{"TARC_PASSWORD"},
								Usage:   "download client password (prompted when omitted)",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "list registered clients",
						Action: clientList,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "show recent scan runs",
				Action: history,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   20,
						Usage:   "maximum number of runs to show",
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR]: %v\n", err)
		os.Exit(1)
	}
}
