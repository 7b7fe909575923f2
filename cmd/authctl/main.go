package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/authctl"
	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/server"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, authctl.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	_, args := flagx.Split(os.Args[1:], config.CommandLineFlags())

	logger := server.NewLogger(os.Stderr, cfg)
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	cli := authctl.NewApp(app, app.Tokens(), app.Users(), os.Stdin, os.Stdout)
	if err := cli.Run(ctx, args); err != nil {
		if errors.Is(err, authctl.ErrUsage) {
			cli.Usage()
		}
		return err
	}
	return nil
}
