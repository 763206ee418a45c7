package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/config"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/gameloop"
	"github.com/rocketscienceinc/tictactoe-kata/internal/player"
	"github.com/rocketscienceinc/tictactoe-kata/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-kata/internal/repository"
	"github.com/rocketscienceinc/tictactoe-kata/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-kata/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// HistoryStore - where finished games end up.
type HistoryStore int

const (
	HistoryOff HistoryStore = iota
	HistoryMemory
	HistoryRedis
)

// App - wires storage, presentation and the game manager together.
type App struct {
	logger *slog.Logger
	conf   *config.Config

	in  io.Reader
	out io.Writer

	Games   *usecase.GameManager
	history HistoryStore
	closers []func() error
}

func New(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (*App, error) {
	log := logger.With("component", "app")

	app := &App{
		logger: logger,
		conf:   conf,
		in:     in,
		out:    out,
	}

	gameRepo, err := app.initGameRepository(ctx, log)
	if err != nil {
		return nil, err
	}

	loop := gameloop.New(logger, app.initPresenter(), presenter.NewWriterOutput(out))
	app.Games = usecase.NewGameManager(logger, gameRepo, loop)

	return app, nil
}

func (that *App) initGameRepository(ctx context.Context, log *slog.Logger) (repository.GameRepository, error) {
	if !that.conf.History.Enabled {
		log.Debug("history disabled, finished games are not kept")
		that.history = HistoryOff
		return repository.NewNopGameRepository(), nil
	}

	if !that.conf.Redis.Enabled {
		log.Debug("redis disabled, history is kept in memory")
		that.history = HistoryMemory
		return repository.NewMemoryGameRepository(), nil
	}

	redisAddrString := that.conf.Redis.GetRedisAddr()
	if that.conf.Redis.Host == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, that.conf.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	that.closers = append(that.closers, redisStorage.Close)
	log.Info("connected to redis", "addr", redisAddrString)
	that.history = HistoryRedis

	return repository.NewGameRepository(redisStorage.Connection, that.conf.Redis.TTL), nil
}

// History - the store finished games were written to.
func (that *App) History() HistoryStore {
	return that.history
}

func (that *App) initPresenter() presenter.Presenter {
	var profile termenv.Profile

	switch that.conf.Color {
	case config.ColorNever:
		profile = termenv.Ascii
	case config.ColorAlways:
		profile = termenv.ANSI256
	default:
		profile = termenv.NewOutput(that.out).EnvColorProfile()
	}

	if profile == termenv.Ascii {
		return presenter.NewText()
	}

	return presenter.NewStyledText(presenter.NewRenderer(that.out, profile))
}

// PlayOptions - moves replaces console input with a fixed script; bot names
// the token played by the random move picker.
type PlayOptions struct {
	Tokens []entity.Token
	Moves  []entity.Space
	Bot    string
}

func (that *App) Play(ctx context.Context, opts PlayOptions) (*entity.Record, error) {
	tokens := opts.Tokens
	if len(tokens) == 0 {
		configured, err := that.conf.PlayerTokens()
		if err != nil {
			return nil, err
		}
		tokens = configured
	}

	bot := opts.Bot
	if bot == "" {
		bot = that.conf.Bot
	}

	source, err := that.moveSource(tokens, opts.Moves, bot)
	if err != nil {
		return nil, err
	}

	record, err := that.Games.Play(ctx, source, tokens, gameloop.Forever())
	if err != nil {
		return record, fmt.Errorf("game failed: %w", err)
	}

	return record, nil
}

func (that *App) moveSource(tokens []entity.Token, moves []entity.Space, bot string) (tictactoe.MoveSource, error) {
	var human tictactoe.MoveSource
	if moves != nil {
		human = player.NewScripted(moves...)
	} else {
		human = player.NewConsole(that.in, that.out)
	}

	if bot == "" {
		return human, nil
	}

	botToken, err := entity.NewToken(bot)
	if err != nil {
		return nil, fmt.Errorf("invalid bot token: %w", err)
	}

	if !slices.Contains(tokens, botToken) {
		return nil, fmt.Errorf("%w: bot token %s is not playing", apperror.ErrInvalidPlayers, botToken)
	}

	seats := player.NewSeats()
	for _, token := range tokens {
		if token == botToken {
			seats.Seat(token, player.NewRandom(nil))
			continue
		}
		seats.Seat(token, human)
	}

	return seats, nil
}

// Close - releases storage connections.
func (that *App) Close() {
	for _, closer := range that.closers {
		if err := closer(); err != nil {
			that.logger.Error("could not close storage", "error", err)
		}
	}
}
