package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/store"
)

func readSnapshot(path string) (*minefield.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot file: %w", err)
	}
	return minefield.LoadSnapshot(b)
}

func (c *cli) newCommand() *cobra.Command {
	var (
		seed     uint64
		snapshot bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a random standard board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cmd.Flags().Changed("seed"):
			case c.config.Seed != 0:
				seed = c.config.Seed
			default:
				seed = minefield.NewRandomSeed()
			}
			c.log.WithField("seed", seed).Debug("generating board")

			s := minefield.NewSeededSnapshot(seed)
			if !snapshot {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s.Board)
				return err
			}

			out, err := s.Serialize()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed, random when not set")
	cmd.Flags().BoolVar(&snapshot, "yaml", false, "print a YAML snapshot with the seed")
	return cmd
}

func (c *cli) hintsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hints FILE",
		Short: "Recompute the hints of a board",
		Long:  "Reads a board, recomputes every hint from its mines and prints it. FILE may be - for stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			g.ClearHints()
			g.GenerateHints()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Text())
			return err
		},
	}
}

func (c *cli) showCommand() *cobra.Command {
	var (
		reveal  []string
		uncover bool
	)

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the player's view of a board",
		Long: `Prints a board the way a player sees it: # for hidden cells, a space
for revealed empty cells. Nothing is revealed unless asked for.`,
		Example: "  minefield show board.txt --reveal 0,0 --reveal 3,4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}

			if uncover {
				g.RevealAll()
			}
			for _, s := range reveal {
				p, err := parsePosition(s)
				if err != nil {
					return err
				}
				if err := g.Reveal(p); err != nil {
					return err
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), g.Revealed())
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&reveal, "reveal", "r", nil, "reveal the cell at ROW,COL (repeatable)")
	cmd.Flags().BoolVar(&uncover, "uncover", false, "reveal every cell")
	return cmd
}

func (c *cli) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME FILE",
		Short: "Store a board under NAME, replacing any previous one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]

			g, err := readGrid(cmd, path)
			if err != nil {
				return err
			}

			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Set(name, g); err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{
				"name":  name,
				"dims":  g.Dimensions().String(),
				"mines": g.MineCount(),
			}).Info("saved board")
			return nil
		},
	}
}

func (c *cli) loadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load NAME",
		Short: "Print the board stored under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := s.Get(args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no board named %q", args[0])
			} else if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Text())
			return err
		},
	}
}

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored board names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *cli) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"delete"},
		Short:   "Remove the board stored under NAME",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			return s.Delete(args[0])
		},
	}
}
