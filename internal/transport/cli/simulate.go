package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/playground/internal/config"
	"github.com/rocketscienceinc/playground/internal/playground"
	"github.com/rocketscienceinc/playground/internal/usecase"
)

// simulate: generate a random game and print the tracked runs.
func simulateCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	var (
		seed  uint64
		moves int
		span  int
		opts  reportOptions
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a random game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			generated, err := usecase.NewGenerator(seed).Generate(moves, span)
			if err != nil {
				return fmt.Errorf("failed to generate game: %w", err)
			}

			board := playground.NewBoard()
			if _, err = usecase.NewReplay(logger, board).PlayAll(cmd.Context(), generated); err != nil {
				return fmt.Errorf("replay failed: %w", err)
			}

			logger.Info("simulation finished", "seed", seed, "moves", len(generated), "span", span)

			notation := make([]string, len(generated))
			for i, move := range generated {
				notation[i] = move.Notation()
			}

			if _, err = fmt.Fprintf(cmd.OutOrStdout(), "moves: %s\n", strings.Join(notation, " ")); err != nil {
				return fmt.Errorf("failed to write moves: %w", err)
			}

			return writeReport(cmd.OutOrStdout(), board, opts)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", conf.Simulate.Seed, "random seed")
	cmd.Flags().IntVar(&moves, "moves", conf.Simulate.Moves, "number of moves")
	cmd.Flags().IntVar(&span, "span", conf.Simulate.Span, "side of the square the moves fall in")
	opts.bind(cmd, conf)

	return cmd
}
