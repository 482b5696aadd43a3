package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/fivedraw/poker"
	"github.com/lox/fivedraw/trump"
)

// Seats is the number of hands dealt per showdown.
const Seats = 2

// DefaultRounds is the number of exchange rounds per hand.
const DefaultRounds = 2

// Engine plays automated five-card draw hands.
type Engine struct {
	pool     *trump.Pool
	searcher *poker.Searcher
	logger   *log.Logger
	rounds   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRounds sets the number of exchange rounds. Negative values are
// treated as zero.
func WithRounds(n int) Option {
	return func(e *Engine) { e.rounds = max(n, 0) }
}

// NewEngine creates a game engine. A nil logger discards output.
func NewEngine(pool *trump.Pool, searcher *poker.Searcher, logger *log.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		pool:     pool,
		searcher: searcher,
		logger:   logger,
		rounds:   DefaultRounds,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exchange records one seat's draw in one round.
type Exchange struct {
	Round     int
	Seat      int
	Discarded []trump.Card
	Drawn     []trump.Card
}

// HandResult contains the results of a completed hand
type HandResult struct {
	Initial   [Seats][]trump.Card
	Final     [Seats][]trump.Card
	Exchanges []Exchange
	Result    poker.Result
}

type discardResult struct {
	seat    int
	discard []int
	err     error
}

// PlayHand runs a complete hand from the deal to the confrontation. Pools
// holding more than one joker are rejected with poker.ErrUnsupportedHand,
// since a seat could be dealt both.
func (e *Engine) PlayHand() (*HandResult, error) {
	if n := jokersIn(e.pool.Cards()); n > 1 {
		return nil, fmt.Errorf("%w: pool holds %d jokers", poker.ErrUnsupportedHand, n)
	}
	e.pool.Shuffle()
	if err := e.pool.DealFixed(Seats, poker.HandSize); err != nil {
		return nil, fmt.Errorf("dealing: %w", err)
	}
	hands := e.pool.Decks()

	result := &HandResult{}
	for i, h := range hands {
		h.Sort()
		result.Initial[i] = h.Cards()
	}
	e.logger.Debug("Dealt hands", "seat0", hands[0], "seat1", hands[1], "pile", e.pool.Discard().Len())

	for round := range e.rounds {
		discards, err := e.requestDiscards(hands)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		for seat, h := range hands {
			ex, err := e.exchange(h, discards[seat])
			if err != nil {
				return nil, fmt.Errorf("round %d seat %d: %w", round+1, seat, err)
			}
			ex.Round, ex.Seat = round+1, seat
			result.Exchanges = append(result.Exchanges, ex)
			e.logger.Debug("Exchanged cards",
				"round", ex.Round,
				"seat", seat,
				"discarded", len(ex.Discarded),
				"hand", h)
		}
		for _, h := range hands {
			h.Sort()
		}
	}

	res, err := poker.Confront(hands[0], hands[1])
	if err != nil {
		return nil, fmt.Errorf("confronting: %w", err)
	}
	result.Result = res
	for i, h := range hands {
		result.Final[i] = h.Cards()
	}

	e.logger.Info("Hand complete",
		"seat0", res.Left,
		"seat1", res.Right,
		"outcome", res.Outcome)
	return result, nil
}

// requestDiscards computes every seat's discards in the background and
// waits for all of them.
func (e *Engine) requestDiscards(hands []*trump.Deck) ([Seats][]int, error) {
	var out [Seats][]int
	results := make(chan discardResult, len(hands))
	for seat, h := range hands {
		e.searcher.BestDiscardAsync(e.pool, h, func(discard []int, err error) {
			results <- discardResult{seat: seat, discard: discard, err: err}
		})
	}
	var firstErr error
	for range hands {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("seat %d: %w", r.seat, r.err)
		}
		out[r.seat] = r.discard
	}
	return out, firstErr
}

// exchange replaces the cards at positions with cards from the front of the
// discard/draw pile.
func (e *Engine) exchange(hand *trump.Deck, positions []int) (Exchange, error) {
	var ex Exchange
	for _, pos := range positions {
		c, err := hand.Get(pos)
		if err != nil {
			return ex, err
		}
		ex.Discarded = append(ex.Discarded, c)
	}

	pile := e.pool.Discard()
	for _, old := range ex.Discarded {
		drawn, err := pile.Pop(0, false)
		if err != nil {
			return ex, fmt.Errorf("drawing replacement: %w", err)
		}
		if err := hand.Remove(old.Code(), true); err != nil {
			return ex, err
		}
		hand.Add(drawn)
		ex.Drawn = append(ex.Drawn, drawn)
	}
	return ex, nil
}

func jokersIn(cards []trump.Card) int {
	n := 0
	for _, c := range cards {
		if c.IsJoker() {
			n++
		}
	}
	return n
}
