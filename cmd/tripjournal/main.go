package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tripjournal/internal/buildinfo"
	"github.com/dmitrijs2005/tripjournal/internal/cli"
	"github.com/dmitrijs2005/tripjournal/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, cleanup, err := cli.Bootstrap(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	app.Run(ctx)

}
