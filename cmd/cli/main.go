package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/tracesnap/internal/buildinfo"
	"github.com/dmitrijs2005/tracesnap/internal/cli"
	"github.com/dmitrijs2005/tracesnap/internal/config"
	"github.com/dmitrijs2005/tracesnap/internal/logging"
	"github.com/joho/godotenv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
