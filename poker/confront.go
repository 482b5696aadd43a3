package poker

import (
	"fmt"

	"github.com/lox/fivedraw/trump"
)

// Outcome is the result of a confrontation from the left hand's side.
type Outcome int

const (
	RightWins Outcome = -1
	Tie       Outcome = 0
	LeftWins  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case LeftWins:
		return "left wins"
	case RightWins:
		return "right wins"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Result is a confrontation outcome together with both categories.
type Result struct {
	Outcome Outcome
	Left    Category
	Right   Category
}

// Confront classifies both hands and decides the winner.
func Confront(left, right *trump.Deck) (Result, error) {
	l, err := Classify(left)
	if err != nil {
		return Result{}, fmt.Errorf("left hand: %w", err)
	}
	r, err := Classify(right)
	if err != nil {
		return Result{}, fmt.Errorf("right hand: %w", err)
	}
	o, err := Compare(l, r)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: o, Left: l.Category, Right: r.Category}, nil
}

// Compare orders two classifications. The higher category wins; equal
// categories are settled by the first tie-break card only, except royal
// straight flushes, which are settled by suit power. Two royal straight
// flushes of the same suit cannot come from one catalog and return
// ErrInvariantViolation.
func Compare(left, right Classification) (Outcome, error) {
	switch {
	case left.Category > right.Category:
		return LeftWins, nil
	case left.Category < right.Category:
		return RightWins, nil
	}
	if len(left.TieBreak) == 0 || len(right.TieBreak) == 0 {
		return Tie, fmt.Errorf("%w: empty tie-break for %s", ErrInvariantViolation, left.Category)
	}
	l, r := left.TieBreak[0], right.TieBreak[0]

	if left.Category == RoyalStraightFlush {
		switch {
		case l.SuitGreater(r):
			return LeftWins, nil
		case l.SuitLess(r):
			return RightWins, nil
		}
		return Tie, fmt.Errorf("%w: two royal straight flushes in %s", ErrInvariantViolation, l.Suit())
	}

	switch {
	case l.Greater(r):
		return LeftWins, nil
	case l.Less(r):
		return RightWins, nil
	}
	return Tie, nil
}
