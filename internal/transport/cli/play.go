package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/playground/internal/config"
	"github.com/rocketscienceinc/playground/internal/playground"
	"github.com/rocketscienceinc/playground/internal/usecase"
)

// play [moves...]: replay moves and print the tracked runs.
func playCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	var (
		file string
		opts reportOptions
	)

	cmd := &cobra.Command{
		Use:   "play [moves...]",
		Short: "Replay moves such as X:0,0 O:1,1",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := args
			if file != "" {
				read, err := readTokens(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				tokens = append(tokens, read...)
			}

			board := playground.NewBoard()
			played, err := usecase.NewReplay(logger, board).PlayNotation(cmd.Context(), tokens)
			if err != nil {
				return fmt.Errorf("replay failed: %w", err)
			}

			logger.Info("replay finished", "moves", played)

			return writeReport(cmd.OutOrStdout(), board, opts)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read moves from a file, - for stdin")
	opts.bind(cmd, conf)

	return cmd
}

// readTokens reads whitespace-separated moves; anything after # on a line is ignored.
func readTokens(stdin io.Reader, path string) ([]string, error) {
	source := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open moves file: %w", err)
		}
		defer f.Close()

		source = f
	}

	var tokens []string

	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		tokens = append(tokens, strings.Fields(line)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	return tokens, nil
}
