package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/gameloop"
)

func newHistoryCmd(root *rootOptions, streams Streams) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = root.conf.History.Limit
			}

			app, err := root.newApp(cmd, streams)
			if err != nil {
				return err
			}
			defer app.Close()

			records, err := app.Games.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintln(streams.Out, "No games played yet")
				return nil
			}

			for _, record := range records {
				printSummary(streams.Out, record)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of games to list (default from config)")

	return cmd
}

func newShowCmd(root *rootOptions, streams Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show the moves of a finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.newApp(cmd, streams)
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Games.GetGameByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printSummary(streams.Out, record)
			for i, move := range record.Moves {
				fmt.Fprintf(streams.Out, "  %d. %s -> %d\n", i+1, move.Token, move.Space)
			}

			return nil
		},
	}
}

func newDeleteCmd(root *rootOptions, streams Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Remove a finished game from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.newApp(cmd, streams)
			if err != nil {
				return err
			}
			defer app.Close()

			if err = app.Games.DeleteGame(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(streams.Out, "Game %s deleted\n", args[0])

			return nil
		},
	}
}

func printSummary(w io.Writer, record *entity.Record) {
	tokens := lo.Map(record.Tokens, func(token entity.Token, _ int) string { return token.String() })

	fmt.Fprintf(w, "%s  %s  %s  %d moves  %s\n",
		record.ID,
		record.FinishedAt.Format(time.DateTime),
		strings.Join(tokens, " vs "),
		len(record.Moves),
		gameloop.FinalNotice(record.Outcome),
	)
}
