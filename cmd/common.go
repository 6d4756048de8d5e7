package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tarc-io/tarc/config"
	"github.com/tarc-io/tarc/tracker/db"
)

// newLogger returns the diagnostics logger. User-facing output goes to
// stdout as [INFO] lines, not through here.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	logger, err := zap.NewDevelopment()

	return logger, errors.WithStack(err)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   1,
			MaxConnsPerHost:       1,
			ResponseHeaderTimeout: 20 * time.Second,
			Proxy:                 http.ProxyFromEnvironment,
		},
		Timeout: 0,
	}
}

// storagePath resolves the store location: --storage flag (or TARC_STORAGE),
// then the config file, then ~/.tarch.db.
func storagePath(c *cli.Context, cfg *config.Config) (string, error) {
	if path := c.String("storage"); path != "" {
		return path, nil
	}
	if cfg.Storage != "" {
		return cfg.Storage, nil
	}

	return config.DefaultStorage()
}

// openStore runs the schema guard against the store and reports first-run
// initialisation to the user.
func openStore(ctx context.Context, c *cli.Context, cfg *config.Config) (*db.SQLite3, error) {
	path, err := storagePath(c, cfg)
	if err != nil {
		return nil, err
	}

	store, err := db.NewSQLite3(ctx, path)
	if err != nil {
		return nil, err
	}

	if store.Initialized() {
		fmt.Printf("[INFO]: Initializing database at %s\n", path)
	}

	return store, nil
}

// credentials returns the username/password pair for a daemon login. When a
// username is set but no password came from flags, environment or .env, the
// password is prompted on the terminal.
func credentials(c *cli.Context) (string, string, error) {
	username := c.String("username")
	password := c.String("password")

	if username == "" || password != "" {
		return username, password, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", errors.New("no password given and stdin is not a terminal")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", username)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", "", errors.Wrap(err, "read password")
	}

	return username, string(raw), nil
}
