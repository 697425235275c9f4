// Package cli implements the minefield command line tool.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/logging"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/store"
)

const defaultConfigPath = "minefield.json"

type cli struct {
	log *logrus.Logger

	configPath string
	dbPath     string
	config     *config.Config
}

// NewRootCommand builds the minefield command tree. log receives
// diagnostics, command output goes to the command's out writer.
func NewRootCommand(log *logrus.Logger) *cobra.Command {
	c := &cli{log: log}

	root := &cobra.Command{
		Use:   "minefield",
		Short: "Generate, inspect and store minesweeper boards",
		Long: `minefield builds minesweeper boards and converts them to and from
the debug text format, one row per line:

	*  empty cell
	X  mine
	1-8  number of mines around the cell

Generate a random board and keep it under a name
	minefield new --seed 42 > board.txt
	minefield save fixture board.txt
`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", defaultConfigPath, "config file path")
	flags.StringVar(&c.dbPath, "db", "", "SQLite board store path (overrides config)")

	root.AddCommand(
		c.newCommand(),
		c.hintsCommand(),
		c.showCommand(),
		c.saveCommand(),
		c.loadCommand(),
		c.listCommand(),
		c.rmCommand(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	isDefault := !cmd.Flags().Changed("config")
	config, err := config.Load(c.configPath, isDefault)
	if err != nil {
		return err
	}
	if c.dbPath != "" {
		config.SQLitePath = c.dbPath
	}
	c.config = config

	c.log.SetOutput(cmd.ErrOrStderr())
	if err := logging.Setup(c.log, config); err != nil {
		return err
	}
	logging.Share(c.log, minefield.Log)

	c.log.WithFields(config.Fields()).Debug("config")
	return nil
}

func (c *cli) openStore() (*store.Store, error) {
	s, err := store.Open(c.config.SQLitePath)
	if err != nil {
		return nil, err
	}
	c.log.WithField("path", c.config.SQLitePath).Debug("opened board store")
	return s, nil
}

// readGrid loads a board from path: "-" is stdin, .yaml and .yml files hold
// a snapshot, anything else is debug text.
func readGrid(cmd *cobra.Command, path string) (*minefield.Grid, error) {
	if path == "-" {
		return minefield.DecodeReader(cmd.InOrStdin())
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err := readSnapshot(path)
		if err != nil {
			return nil, err
		}
		return s.Grid(), nil
	default:
		return minefield.DecodeFile(path)
	}
}

func parsePosition(s string) (p minefield.Position, err error) {
	if _, err = fmt.Sscanf(s, "%d,%d", &p.Row, &p.Col); err != nil {
		return p, fmt.Errorf("invalid position %q, expected ROW,COL: %w", s, err)
	}
	return p, nil
}
