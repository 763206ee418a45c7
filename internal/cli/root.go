package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-kata/internal"
	"github.com/rocketscienceinc/tictactoe-kata/internal/config"
)

const defaultConfigPath = "config.yml"

// Streams - where the commands read moves and write boards and logs.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type rootOptions struct {
	configPath string
	logLevel   string

	conf   *config.Config
	logger *slog.Logger
}

// NewRootCmd - builds the tictactoe command tree.
func NewRootCmd(streams Streams) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe in the terminal",
		Long: `tictactoe plays tic-tac-toe on the console.

Moves are entered as space numbers 1-9, counted row by row from the top left.
Finished games are kept in the history (Redis or memory, see config.yml).`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			if opts.logLevel != "" {
				conf.LogLevel = opts.logLevel
			}

			opts.conf = conf
			opts.logger = initLogger(streams.ErrOut, conf.LogLevel)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.ErrOut)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "Path to the yaml config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newPlayCmd(opts, streams))
	rootCmd.AddCommand(newHistoryCmd(opts, streams))
	rootCmd.AddCommand(newShowCmd(opts, streams))
	rootCmd.AddCommand(newDeleteCmd(opts, streams))

	return rootCmd
}

// Execute - runs the command line with the process streams and signals.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	streams := Streams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
	if err := NewRootCmd(streams).ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// initLogger - JSON logs on w so the board on stdout stays readable.
func initLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func (that *rootOptions) newApp(cmd *cobra.Command, streams Streams) (*application.App, error) {
	app, err := application.New(cmd.Context(), that.logger, that.conf, streams.In, streams.Out)
	if err != nil {
		return nil, fmt.Errorf("failed to start: %w", err)
	}

	return app, nil
}
