// Package config loads the fivedraw HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/fivedraw/internal/randutil"
	"github.com/lox/fivedraw/poker"
	"github.com/lox/fivedraw/trump"
)

// Config represents the complete fivedraw configuration
type Config struct {
	Pool     *PoolConfig   `hcl:"pool,block"`
	Search   *SearchConfig `hcl:"search,block"`
	LogLevel string        `hcl:"log_level,optional"`
}

// PoolConfig describes the card catalog and its random source
type PoolConfig struct {
	Jokers *int     `hcl:"jokers,optional"`
	Suits  []string `hcl:"suits,optional"`
	Ranks  []int    `hcl:"ranks,optional"`
	Seed   int64    `hcl:"seed,optional"`
}

// SearchConfig tunes the discard search
type SearchConfig struct {
	Workers  int    `hcl:"workers,optional"`
	TieBreak string `hcl:"tiebreak,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	jokers := 1
	ranks := make([]int, 0, 13)
	for _, r := range trump.Ranks() {
		ranks = append(ranks, int(r))
	}
	return &Config{
		Pool: &PoolConfig{
			Jokers: &jokers,
			Suits:  []string{"s", "c", "d", "h"},
			Ranks:  ranks,
		},
		Search: &SearchConfig{
			TieBreak: poker.TieFirstSeen.String(),
		},
		LogLevel: "info",
	}
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills missing blocks and values from Default, so a
// hand-built Config is usable too.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Pool == nil {
		c.Pool = def.Pool
	}
	if c.Pool.Jokers == nil {
		c.Pool.Jokers = def.Pool.Jokers
	}
	if len(c.Pool.Suits) == 0 {
		c.Pool.Suits = def.Pool.Suits
	}
	if len(c.Pool.Ranks) == 0 {
		c.Pool.Ranks = def.Pool.Ranks
	}
	if c.Search == nil {
		c.Search = def.Search
	}
	if c.Search.TieBreak == "" {
		c.Search.TieBreak = def.Search.TieBreak
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate validates the configuration, filling defaults first
func (c *Config) Validate() error {
	c.applyDefaults()
	if _, _, err := c.PoolOptions(); err != nil {
		return err
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("search: workers must not be negative: %d", c.Search.Workers)
	}
	if _, err := poker.ParseTieBreak(c.Search.TieBreak); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// PoolOptions converts the pool block into trump.Pool options. The returned
// seed is the one actually used, so a time-seeded deal can be replayed.
func (c *Config) PoolOptions() ([]trump.Option, int64, error) {
	c.applyDefaults()
	p := c.Pool
	if *p.Jokers < 0 || *p.Jokers > 2 {
		return nil, 0, fmt.Errorf("pool: %w: joker count %d not in [0,2]", trump.ErrInvalidPoolConfig, *p.Jokers)
	}

	suits := make([]trump.Suit, 0, len(p.Suits))
	for _, s := range p.Suits {
		suit, err := trump.ParseSuit(s)
		if err != nil {
			return nil, 0, fmt.Errorf("pool: %w", err)
		}
		suits = append(suits, suit)
	}

	ranks := make([]trump.Rank, 0, len(p.Ranks))
	for _, r := range p.Ranks {
		if r < int(trump.Ace) || r > int(trump.King) {
			return nil, 0, fmt.Errorf("pool: %w: %d", trump.ErrInvalidRank, r)
		}
		ranks = append(ranks, trump.Rank(r))
	}

	rng, seed := randutil.Resolve(p.Seed)
	return []trump.Option{
		trump.WithJokers(*p.Jokers),
		trump.WithSuits(suits...),
		trump.WithRanks(ranks...),
		trump.WithRand(rng),
	}, seed, nil
}

// SearchOptions converts the search block into poker.Searcher options.
func (c *Config) SearchOptions(logger *log.Logger) ([]poker.Option, error) {
	c.applyDefaults()
	tie, err := poker.ParseTieBreak(c.Search.TieBreak)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return []poker.Option{
		poker.WithWorkers(c.Search.Workers),
		poker.WithTieBreak(tie),
		poker.WithLogger(logger),
	}, nil
}
