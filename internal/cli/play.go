package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-kata/internal"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/player"
)

type playOptions struct {
	moves  string
	tokens []string
	bot    string
}

func newPlayCmd(root *rootOptions, streams Streams) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Example: `  tictactoe play
  tictactoe play --bot O
  tictactoe play --moves 1,4,2,5,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			playOpts, err := opts.toPlayOptions()
			if err != nil {
				return err
			}

			app, err := root.newApp(cmd, streams)
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Play(cmd.Context(), playOpts)
			if err != nil {
				return err
			}

			if record.IsFinished() {
				fmt.Fprintln(streams.Out, finishedMessage(record.ID, app.History()))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.moves, "moves", "", "Comma separated spaces to play instead of reading the console")
	cmd.Flags().StringSliceVar(&opts.tokens, "tokens", nil, "Tokens in turn order (default from config)")
	cmd.Flags().StringVar(&opts.bot, "bot", "", "Token played by the random move picker")

	return cmd
}

// finishedMessage - tells where the finished game went.
func finishedMessage(id string, history application.HistoryStore) string {
	switch history {
	case application.HistoryRedis:
		return fmt.Sprintf("Game %s saved", id)
	case application.HistoryMemory:
		return fmt.Sprintf("Game %s kept in memory for this run only", id)
	default:
		return fmt.Sprintf("Game %s finished, history is disabled", id)
	}
}

func (that *playOptions) toPlayOptions() (application.PlayOptions, error) {
	result := application.PlayOptions{Bot: strings.TrimSpace(that.bot)}

	if that.moves != "" {
		moves, err := player.ParseMoves(that.moves)
		if err != nil {
			return result, fmt.Errorf("invalid --moves: %w", err)
		}
		result.Moves = moves
	}

	for _, label := range that.tokens {
		token, err := entity.NewToken(label)
		if err != nil {
			return result, fmt.Errorf("invalid --tokens: %w", err)
		}
		result.Tokens = append(result.Tokens, token)
	}

	return result, nil
}
