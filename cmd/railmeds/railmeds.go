package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railmeds/railmeds/pkg/api"
	"github.com/railmeds/railmeds/pkg/dispatch"
	"github.com/railmeds/railmeds/pkg/tracking"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILMEDS_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILMEDS_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railmeds",
		Description: "Single binary of truth for Rail Meds - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			dispatch.RegisterCLI(),
			tracking.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
