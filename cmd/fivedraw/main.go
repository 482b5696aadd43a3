package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/fivedraw/internal/config"
	"github.com/lox/fivedraw/poker"
	"github.com/lox/fivedraw/trump"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"fivedraw.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Seed     int64            `help:"Random seed for reproducible deals (overrides config)"`
	NoColor  bool             `help:"Disable colored output"`

	Classify ClassifyCmd `cmd:"" help:"Classify a five-card hand"`
	Confront ConfrontCmd `cmd:"" help:"Decide the winner between two hands"`
	Discard  DiscardCmd  `cmd:"" help:"Recommend which cards to discard"`
	Deal     DealCmd     `cmd:"" help:"Shuffle the pool and deal decks"`
	Showdown ShowdownCmd `cmd:"" help:"Play automated five-card draw hands"`
}

// App carries the state shared by every command.
type App struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("fivedraw"),
		kong.Description("Five-card draw hand classifier and discard advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	app, err := cli.newApp(stdout, stderr)
	if err != nil {
		return err
	}
	return ctx.Run(app)
}

func (cli *CLI) newApp(stdout, stderr io.Writer) (*App, error) {
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Seed != 0 {
		cfg.Pool.Seed = cli.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "fivedraw",
	})

	return &App{cfg: cfg, logger: logger, out: stdout}, nil
}

// newPool builds the configured pool and reports the seed it was built from.
func (a *App) newPool() (*trump.Pool, error) {
	opts, seed, err := a.cfg.PoolOptions()
	if err != nil {
		return nil, err
	}
	pool, err := trump.NewPool(opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Pool ready", "cards", pool.Len(), "seed", seed)
	return pool, nil
}

func (a *App) newSearcher() (*poker.Searcher, error) {
	opts, err := a.cfg.SearchOptions(a.logger)
	if err != nil {
		return nil, err
	}
	return poker.NewSearcher(opts...), nil
}

// parseHand decodes a five-card hand given as one or more arguments.
func parseHand(args ...string) (*trump.Deck, error) {
	var cards []trump.Card
	for _, arg := range args {
		parsed, err := trump.ParseCards(arg)
		if err != nil {
			return nil, err
		}
		cards = append(cards, parsed...)
	}
	if len(cards) != poker.HandSize {
		return nil, fmt.Errorf("%w: got %d", poker.ErrHandSize, len(cards))
	}
	return trump.NewDeck(nil, cards), nil
}
