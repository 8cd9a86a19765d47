package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Mouss-42/ReactSituPro-main/pkg/config"
	"github.com/Mouss-42/ReactSituPro-main/pkg/database"
)

const appName = "shopfront"

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  appName,
		Usage: "cart and checkout backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("shopfront failed")
	}
}

func migrate(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.SetLevel(cfg.Level())

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.Migrate(db, log.StandardLogger())
}
