package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/playground/internal/config"
	"github.com/rocketscienceinc/playground/internal/entity"
	"github.com/rocketscienceinc/playground/internal/playground"
	"github.com/rocketscienceinc/playground/internal/render"
)

func New(logger *slog.Logger, conf *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "playground",
		Short:         "Track runs of moves on an unbounded grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	log := logger.With("component", "cli")

	root.AddCommand(playCmd(log, conf), simulateCmd(log, conf))

	return root
}

type reportOptions struct {
	minLength int
	noBoard   bool
}

func (that *reportOptions) bind(cmd *cobra.Command, conf *config.Config) {
	cmd.Flags().IntVar(&that.minLength, "min-length", conf.MinRunLength, "shortest run to list")
	cmd.Flags().BoolVar(&that.noBoard, "no-board", false, "skip the board drawing")
}

// writeReport prints the board and the runs of both players.
func writeReport(w io.Writer, board *playground.Board, opts reportOptions) error {
	if !opts.noBoard {
		if _, err := io.WriteString(w, render.Board(board)); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	sections := []struct {
		title  string
		player entity.Player
	}{
		{"opportunities", entity.PlayerMe},
		{"threats", entity.PlayerOpponent},
	}

	for _, section := range sections {
		report := render.Candidates(board.Candidates(section.player), opts.minLength)
		if _, err := fmt.Fprintf(w, "%s (%s):\n%s", section.title, section.player.Mark(), report); err != nil {
			return fmt.Errorf("failed to write %s: %w", section.title, err)
		}
	}

	return nil
}
