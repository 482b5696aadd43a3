package trump

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/lox/fivedraw/internal/randutil"
)

// Pool owns the master card catalog, the dealt decks and the shared
// discard/draw pile.
type Pool struct {
	jokers int
	suits  []Suit
	ranks  []Rank

	cards   []Card
	decks   []*Deck
	discard *Deck
	rng     *rand.Rand
}

// Option configures a Pool.
type Option func(*Pool)

// WithJokers sets the number of jokers in the catalog (0, 1 or 2).
func WithJokers(n int) Option {
	return func(p *Pool) { p.jokers = n }
}

// WithSuits sets the suits in play, in catalog iteration order.
func WithSuits(suits ...Suit) Option {
	return func(p *Pool) { p.suits = slices.Clone(suits) }
}

// WithRanks sets the ranks in play. They are generated in the order given.
func WithRanks(ranks ...Rank) Option {
	return func(p *Pool) { p.ranks = slices.Clone(ranks) }
}

// WithRand sets the random source used by Shuffle and DealEven.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pool) { p.rng = rng }
}

// NewPool returns a pool with a freshly generated, unshuffled catalog.
// Without options it holds 53 cards: spades, clubs, diamonds and hearts
// Ace through King, then one joker.
func NewPool(opts ...Option) (*Pool, error) {
	p := &Pool{
		jokers: 1,
		suits:  []Suit{Spade, Club, Diamond, Heart},
		ranks:  Ranks(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.jokers < 0 || p.jokers > 2 {
		return nil, fmt.Errorf("%w: joker count %d not in [0,2]", ErrInvalidPoolConfig, p.jokers)
	}
	for _, s := range p.suits {
		if s < Spade || s > Club {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSuit, s)
		}
	}
	for _, r := range p.ranks {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRank, r)
		}
	}
	if p.rng == nil {
		p.rng = randutil.New(time.Now().UnixNano())
	}
	p.discard = &Deck{pool: p, discard: true}
	p.Reset()
	return p, nil
}

// Len returns the catalog size.
func (p *Pool) Len() int {
	return len(p.cards)
}

// Reset regenerates the catalog suit-major, rank-minor, jokers last.
func (p *Pool) Reset() {
	p.cards = p.cards[:0]
	for _, s := range p.suits {
		for _, r := range p.ranks {
			p.cards = append(p.cards, Card{suit: s, rank: r})
		}
	}
	for range p.jokers {
		p.cards = append(p.cards, NewJoker())
	}
}

// Shuffle regenerates the catalog and randomises its order.
func (p *Pool) Shuffle() {
	p.Reset()
	p.rng.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}

// DealEven splits the whole catalog into n decks of len/n cards, keeping the
// catalog order inside each slice. The len%n leftover cards go one each to a
// random choice of recipients among the first n-1; the last deck never gets
// a leftover. Existing dealt decks are replaced.
func (p *Pool) DealEven(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: cannot deal to %d decks", ErrInvalidPoolConfig, n)
	}
	per := len(p.cards) / n
	hands := make([][]Card, n)
	for i := range n {
		hands[i] = slices.Clone(p.cards[i*per : (i+1)*per])
	}

	recipients := make([]int, n-1)
	for i := range recipients {
		recipients[i] = i
	}
	p.rng.Shuffle(len(recipients), func(i, j int) {
		recipients[i], recipients[j] = recipients[j], recipients[i]
	})
	for i := range len(p.cards) % n {
		to := recipients[len(recipients)-1-i]
		hands[to] = append(hands[to], p.cards[per*n+i])
	}

	p.decks = p.decks[:0]
	for _, h := range hands {
		p.decks = append(p.decks, NewDeck(p, h))
	}
	return nil
}

// DealFixed deals handSize cards to each of n decks from the front of the
// catalog. The rest of the catalog becomes the discard/draw pile.
func (p *Pool) DealFixed(n, handSize int) error {
	if n < 1 || handSize < 0 {
		return fmt.Errorf("%w: cannot deal %d decks of %d", ErrInvalidPoolConfig, n, handSize)
	}
	if n*handSize > len(p.cards) {
		return fmt.Errorf("%w: %d decks of %d need %d cards, catalog has %d",
			ErrInsufficientCards, n, handSize, n*handSize, len(p.cards))
	}
	p.decks = p.decks[:0]
	next := 0
	for range n {
		p.decks = append(p.decks, NewDeck(p, slices.Clone(p.cards[next:next+handSize])))
		next += handSize
	}
	p.discard.Reset(slices.Clone(p.cards[next:]))
	return nil
}

// Cards returns a copy of the catalog in its current order.
func (p *Pool) Cards() []Card {
	return slices.Clone(p.cards)
}

// Decks returns the dealt decks in deal order.
func (p *Pool) Decks() []*Deck {
	return slices.Clone(p.decks)
}

// Discard returns the discard/draw pile.
func (p *Pool) Discard() *Deck {
	return p.discard
}

func (p *Pool) String() string {
	return formatCards(p.cards)
}
