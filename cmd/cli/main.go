package main

import (
	"context"
	"log"
	"os"

	"github.com/todoterm/todoterm/internal/buildinfo"
	"github.com/todoterm/todoterm/internal/client/cli"
	"github.com/todoterm/todoterm/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
