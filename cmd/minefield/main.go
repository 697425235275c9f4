package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/cli"
)

var log = logrus.New()

func main() {
	if err := cli.NewRootCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}
