package trump

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Deck is an ordered, mutable sequence of cards. A deck belongs to a Pool,
// and cards removed from it are moved to the pool's discard pile unless the
// deck is the discard pile itself.
type Deck struct {
	pool    *Pool
	cards   []Card
	discard bool
}

// NewDeck returns a deck owned by pool holding cards. The slice is used as-is.
// pool may be nil, in which case removed cards are never redirected.
func NewDeck(pool *Pool, cards []Card) *Deck {
	return &Deck{pool: pool, cards: cards}
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Get returns the card at index.
func (d *Deck) Get(index int) (Card, error) {
	if index < 0 || index >= len(d.cards) {
		return Card{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(d.cards))
	}
	return d.cards[index], nil
}

// Cards returns a copy of the deck's cards in order.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// IsDiscardPile reports whether d is its pool's discard pile.
func (d *Deck) IsDiscardPile() bool {
	return d.discard
}

// Reset replaces the deck's contents.
func (d *Deck) Reset(cards []Card) {
	d.cards = cards
}

// Add appends a card.
func (d *Deck) Add(card Card) {
	d.cards = append(d.cards, card)
}

// Pop removes and returns the card at index. When toDiscard is set the card
// is appended to the pool's discard pile.
func (d *Deck) Pop(index int, toDiscard bool) (Card, error) {
	c, err := d.Get(index)
	if err != nil {
		return Card{}, err
	}
	d.cards = slices.Delete(d.cards, index, index+1)
	d.redirect(c, toDiscard)
	return c, nil
}

// Remove removes the first card whose code equals code.
func (d *Deck) Remove(code string, toDiscard bool) error {
	i := d.Index(code)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, code)
	}
	c := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)
	d.redirect(c, toDiscard)
	return nil
}

func (d *Deck) redirect(c Card, toDiscard bool) {
	if !toDiscard || d.discard || d.pool == nil {
		return
	}
	d.pool.discard.Add(c)
}

// Index returns the position of the first card with the given code, or -1.
func (d *Deck) Index(code string) int {
	return slices.IndexFunc(d.cards, func(c Card) bool {
		return c.Code() == code
	})
}

// IndexOf returns the position of the first card matching card under
// Card.Matches, or -1. A joker on either side matches anything, so the
// position returned for a joker is simply the first card in the deck.
func (d *Deck) IndexOf(card Card) int {
	return slices.IndexFunc(d.cards, card.Matches)
}

// Sort orders the deck by ascending poker rank (Ace high, jokers last) and,
// within a rank, by descending suit power.
func (d *Deck) Sort() {
	SortCards(d.cards)
}

// Copy returns an independent deck with the same cards and owner.
func (d *Deck) Copy() *Deck {
	return &Deck{pool: d.pool, cards: slices.Clone(d.cards), discard: d.discard}
}

func (d *Deck) String() string {
	return formatCards(d.cards)
}

// SortCards sorts cards in place using the deck order. Cards equal on both
// keys keep their relative order.
func SortCards(cards []Card) {
	slices.SortStableFunc(cards, compareCards)
}

func compareCards(a, b Card) int {
	if c := cmp.Compare(a.Value(), b.Value()); c != 0 {
		return c
	}
	return cmp.Compare(b.SuitPower(), a.SuitPower())
}

func formatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
