package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/database"
	"github.com/vancomm/minefield/internal/logging"
	"github.com/vancomm/minefield/migrations"
)

var log = logrus.New()

func main() {
	configPath := flag.String("c", "/run/config.json", "config file path")
	flag.Parse()

	config, err := config.Load(*configPath, !isFlagSet("c"))
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Setup(log, config); err != nil {
		log.Fatal(err)
	}

	url, err := config.DbURL()
	if err != nil {
		log.WithError(err).Fatal("failed to resolve db url")
	}

	migrator, err := database.Migrate(url, migrations.FS)
	if err != nil {
		log.WithError(err).Fatal("failed to migrate db")
	}
	defer migrator.Close()

	version, dirty, err := migrator.Version()
	if err != nil {
		log.WithError(err).Error("failed to check migration version")
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}

func isFlagSet(name string) (set bool) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return
}
