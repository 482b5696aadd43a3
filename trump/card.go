// Package trump models a playing-card pool: cards, decks and the pool that
// deals them and owns the shared discard/draw pile.
package trump

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit identifies one of the four French suits.
type Suit uint8

const (
	NoSuit Suit = iota
	Spade
	Heart
	Diamond
	Club
)

// JokerCode is the canonical code of a joker card.
const JokerCode = "Joker"

// jokerPower is the synthetic suit power of a joker.
const jokerPower = 10

// Suits lists the suits in power order, strongest first.
var Suits = []Suit{Spade, Heart, Diamond, Club}

// Char returns the single-letter code of the suit (s, h, d, c).
func (s Suit) Char() string {
	switch s {
	case Spade:
		return "s"
	case Heart:
		return "h"
	case Diamond:
		return "d"
	case Club:
		return "c"
	default:
		return "?"
	}
}

// Mark returns the suit symbol.
func (s Suit) Mark() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// Power returns the suit strength: Spade=4 > Heart=3 > Diamond=2 > Club=1.
func (s Suit) Power() int {
	switch s {
	case Spade:
		return 4
	case Heart:
		return 3
	case Diamond:
		return 2
	case Club:
		return 1
	default:
		return 0
	}
}

func (s Suit) String() string {
	return s.Char()
}

// ParseSuit decodes a suit letter.
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "s":
		return Spade, nil
	case "h":
		return Heart, nil
	case "d":
		return Diamond, nil
	case "c":
		return Club, nil
	}
	return NoSuit, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// Rank is a card rank in [1,13]; 1 is the Ace, 11-13 are Jack, Queen, King.
type Rank uint8

const (
	NoRank Rank = 0
	Ace    Rank = 1
	Ten    Rank = 10
	Jack   Rank = 11
	Queen  Rank = 12
	King   Rank = 13
)

var rankMarks = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Valid reports whether r is within [1,13].
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Mark returns the display form of the rank (A, 2..10, J, Q, K).
func (r Rank) Mark() string {
	if !r.Valid() {
		return "?"
	}
	return rankMarks[r-1]
}

// Ranks returns every rank in ascending order, Ace first.
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Card is an immutable playing card: a suit and rank, or a joker.
//
// Go's == compares cards structurally. Poker comparisons go through Matches
// (joker-permissive equality) and Greater/Less/GreaterEq/LessEq (ordering);
// the two are deliberately separate because Matches is not consistent with
// the ordering.
type Card struct {
	suit  Suit
	rank  Rank
	joker bool
}

// NewCard returns the card with the given suit and rank.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit < Spade || suit > Club {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// NewJoker returns a joker card.
func NewJoker() Card {
	return Card{joker: true}
}

// IsJoker reports whether the card is a joker.
func (c Card) IsJoker() bool {
	return c.joker
}

// Suit returns the card's suit, or NoSuit for a joker.
func (c Card) Suit() Suit {
	if c.joker {
		return NoSuit
	}
	return c.suit
}

// Rank returns the card's rank, or NoRank for a joker.
func (c Card) Rank() Rank {
	if c.joker {
		return NoRank
	}
	return c.rank
}

// SuitMark returns the suit symbol, or "Joker".
func (c Card) SuitMark() string {
	if c.joker {
		return JokerCode
	}
	return c.suit.Mark()
}

// RankMark returns the rank display form, or "Joker".
func (c Card) RankMark() string {
	if c.joker {
		return JokerCode
	}
	return c.rank.Mark()
}

// SuitPower returns the suit strength; a joker counts as 10.
func (c Card) SuitPower() int {
	if c.joker {
		return jokerPower
	}
	return c.suit.Power()
}

// Value returns the ranking value of the card: Ace is 14 and a joker is 15.
func (c Card) Value() int {
	switch {
	case c.joker:
		return 15
	case c.rank == Ace:
		return 14
	default:
		return int(c.rank)
	}
}

// Code returns the canonical code of the card, e.g. "s1", "h13" or "Joker".
func (c Card) Code() string {
	if c.joker {
		return JokerCode
	}
	return c.suit.Char() + strconv.Itoa(int(c.rank))
}

// String returns the display form of the card (e.g. "♠A").
func (c Card) String() string {
	if c.joker {
		return JokerCode
	}
	return c.suit.Mark() + c.rank.Mark()
}

// Matches is the joker-permissive equality: two regular cards match when
// their ranks are equal, and a joker matches anything.
func (c Card) Matches(o Card) bool {
	if c.joker || o.joker {
		return true
	}
	return c.rank == o.rank
}

// Greater reports whether c ranks strictly above o. A joker beats every
// regular card; two jokers have no strict winner.
func (c Card) Greater(o Card) bool {
	return c.Value() > o.Value()
}

// Less reports whether c ranks strictly below o.
func (c Card) Less(o Card) bool {
	return c.Value() < o.Value()
}

// GreaterEq reports whether c ranks at or above o.
func (c Card) GreaterEq(o Card) bool {
	return c.Value() >= o.Value()
}

// LessEq reports whether c ranks at or below o.
func (c Card) LessEq(o Card) bool {
	return c.Value() <= o.Value()
}

// SuitMatches reports whether the suits are equal; a joker matches any suit.
func (c Card) SuitMatches(o Card) bool {
	if c.joker || o.joker {
		return true
	}
	return c.suit == o.suit
}

// SuitGreater compares suit power only.
func (c Card) SuitGreater(o Card) bool {
	return c.SuitPower() > o.SuitPower()
}

// SuitLess compares suit power only.
func (c Card) SuitLess(o Card) bool {
	return c.SuitPower() < o.SuitPower()
}

// ParseCard decodes a canonical card code.
func ParseCard(code string) (Card, error) {
	if code == JokerCode {
		return NewJoker(), nil
	}
	if code == "" {
		return Card{}, fmt.Errorf("%w: empty code", ErrInvalidSuit)
	}
	suit, err := ParseSuit(code[:1])
	if err != nil {
		return Card{}, err
	}
	rest := code[1:]
	if !isDigits(rest) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, rest)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 13 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, rest)
	}
	return Card{suit: suit, rank: Rank(n)}, nil
}

// MustParseCard is like ParseCard but panics on invalid input.
func MustParseCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards decodes a whitespace or comma separated list of card codes.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", f, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on invalid input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
