package poker

import (
	"errors"
	"fmt"

	"github.com/lox/fivedraw/trump"
)

// HandSize is the number of cards in a classified hand.
const HandSize = 5

var (
	// ErrInvariantViolation signals corrupted input: a rank distribution no
	// valid hand can have, or two identical royal straight flushes.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrHandSize is returned when a hand does not hold exactly five cards.
	ErrHandSize = errors.New("hand must hold exactly five cards")
	// ErrUnsupportedHand is returned for hands holding more than one joker.
	ErrUnsupportedHand = errors.New("unsupported hand")
)

// Classification is a hand's category and its tie-break cards, most
// significant first.
type Classification struct {
	Category Category
	TieBreak []trump.Card
}

// Classify scores a five-card hand. The hand itself is not modified.
//
// At most one joker is supported; a hand with two jokers returns
// ErrUnsupportedHand. Joker hands are resolved with a rank-count heuristic
// that is only valid for a single joker.
func Classify(hand *trump.Deck) (Classification, error) {
	if hand.Len() != HandSize {
		return Classification{}, fmt.Errorf("%w: got %d", ErrHandSize, hand.Len())
	}
	cards := hand.Cards()
	trump.SortCards(cards)
	return classifySorted(cards)
}

// classifySorted classifies five cards already in deck order. The
// tie-break extraction below indexes into that order.
func classifySorted(cards []trump.Card) (Classification, error) {
	jokers := countJokers(cards)
	if jokers > 1 {
		return Classification{}, fmt.Errorf("%w: %d jokers", ErrUnsupportedHand, jokers)
	}
	j := Category(jokers)

	shape, tie, err := countRanks(cards, jokers == 1)
	if err != nil {
		return Classification{}, err
	}
	if jokers == 1 && shape == shapeFive {
		return Classification{FiveOfAKind.WithJoker(), tie}, nil
	}

	if tb := royalStraightFlush(cards); tb != nil {
		return Classification{RoyalStraightFlush - j, tb}, nil
	}
	if tb := straightFlush(cards); tb != nil {
		return Classification{StraightFlush - j, tb}, nil
	}

	switch shape {
	case shapeFour:
		return Classification{FourOfAKind - j, tie}, nil
	case shapeFullHouse:
		return Classification{FullHouse - j, tie}, nil
	}

	if tb := flush(cards); tb != nil {
		return Classification{Flush - j, tb}, nil
	}
	if tb := straight(cards); tb != nil {
		return Classification{Straight - j, tb}, nil
	}

	switch shape {
	case shapeThree:
		return Classification{ThreeOfAKind - j, tie}, nil
	case shapeTwoPair:
		// a joker with two pairs is promoted to a full house, never reduced
		return Classification{TwoPair, tie}, nil
	case shapePair:
		return Classification{OnePair - j, tie}, nil
	}
	return Classification{HighCard, descending(cards, 4)}, nil
}

type shape int

const (
	shapeHighCard shape = iota
	shapePair
	shapeTwoPair
	shapeThree
	shapeFullHouse
	shapeFour
	shapeFive
)

// countRanks maps the rank distribution of the non-joker cards to a hand
// shape and its tie-break cards. With a joker the shape is promoted one step
// (pair to trips, trips to quads, two pair to full house, and so on).
func countRanks(cards []trump.Card, joker bool) (shape, []trump.Card, error) {
	counts := make(map[trump.Rank]int, len(cards))
	for _, c := range cards {
		if !c.IsJoker() {
			counts[c.Rank()]++
		}
	}
	hasPair := false
	for _, n := range counts {
		if n == 2 {
			hasPair = true
			break
		}
	}
	firstPaired := func() trump.Card {
		for _, c := range cards {
			if !c.IsJoker() && counts[c.Rank()] == 2 {
				return c
			}
		}
		return cards[0]
	}
	distinct := len(counts)

	if joker {
		switch distinct {
		case 1:
			return shapeFive, []trump.Card{cards[0]}, nil
		case 2:
			if hasPair {
				return shapeFullHouse, []trump.Card{cards[2], cards[0]}, nil
			}
			c0, c1, c3 := cards[0], cards[1], cards[3]
			if c0.Rank() == c1.Rank() {
				return shapeFour, []trump.Card{c0, c3}, nil
			}
			if c1.Rank() == c3.Rank() {
				return shapeFour, []trump.Card{c1, c0}, nil
			}
		case 3:
			b := firstPaired()
			tie := []trump.Card{b}
			for i := 3; i >= 0; i-- {
				if cards[i].Rank() != b.Rank() {
					tie = append(tie, cards[i])
				}
			}
			return shapeThree, tie, nil
		case 4:
			return shapePair, descending(cards, 3), nil
		}
		return 0, nil, fmt.Errorf("%w: %d distinct ranks beside a joker in %v", ErrInvariantViolation, distinct, cards)
	}

	switch distinct {
	case 2:
		if hasPair {
			// 1,1,1,2,2 or 1,1,2,2,2
			b, c := cards[2], cards[0]
			if b.Rank() == c.Rank() {
				return shapeFullHouse, []trump.Card{c, cards[3]}, nil
			}
			return shapeFullHouse, []trump.Card{b, c}, nil
		}
		// 1,1,1,1,2 or 1,2,2,2,2
		b, c := cards[1], cards[0]
		if b.Rank() == c.Rank() {
			return shapeFour, []trump.Card{c, cards[4]}, nil
		}
		return shapeFour, []trump.Card{b, c}, nil
	case 3:
		if hasPair {
			return shapeTwoPair, twoPairTieBreak(cards, counts), nil
		}
		c := cards
		switch {
		case c[1].Rank() == c[3].Rank():
			return shapeThree, []trump.Card{c[1], c[4], c[0]}, nil
		case c[0].Rank() == c[2].Rank():
			return shapeThree, []trump.Card{c[0], c[4], c[3]}, nil
		case c[2].Rank() == c[4].Rank():
			return shapeThree, descending(cards, 2), nil
		}
		return 0, nil, fmt.Errorf("%w: unexpected rank distribution %v", ErrInvariantViolation, cards)
	case 4:
		b := firstPaired()
		tie := []trump.Card{b}
		for i := 4; i >= 0; i-- {
			if cards[i].Rank() != b.Rank() {
				tie = append(tie, cards[i])
			}
		}
		return shapePair, tie, nil
	case 5:
		return shapeHighCard, descending(cards, 4), nil
	}
	return 0, nil, fmt.Errorf("%w: %d distinct ranks in %v", ErrInvariantViolation, distinct, cards)
}

// twoPairTieBreak walks the hand from the top and returns the high pair,
// the low pair and the kicker.
func twoPairTieBreak(cards []trump.Card, counts map[trump.Rank]int) []trump.Card {
	tie := make([]trump.Card, 0, 3)
	var kicker trump.Card
	second := false
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		if counts[c.Rank()] == 2 {
			if second {
				tie = append(tie, c)
			}
			second = !second
			continue
		}
		kicker = c
		second = false
	}
	return append(tie, kicker)
}

func royalStraightFlush(cards []trump.Card) []trump.Card {
	tb := straightFlush(cards)
	switch {
	case len(tb) == 5 && tb[0].Rank() == trump.Ace:
		return tb
	case len(tb) == 4 && (tb[0].Rank() == trump.Ace || tb[3].Rank() == trump.Ten):
		return tb
	}
	return nil
}

func straightFlush(cards []trump.Card) []trump.Card {
	tb := flush(cards)
	if tb != nil && straight(cards) != nil {
		return tb
	}
	return nil
}

func flush(cards []trump.Card) []trump.Card {
	suit := cards[0].Suit()
	if cards[0].IsJoker() {
		suit = cards[1].Suit()
	}
	for _, c := range cards {
		if !c.IsJoker() && c.Suit() != suit {
			return nil
		}
	}
	if cards[4].IsJoker() {
		return descending(cards, 3)
	}
	return descending(cards, 4)
}

// straight checks adjacent rank gaps with the Ace counted as 14. A joker
// may bridge exactly one gap of two. The Ace-low straight shows up as a gap
// of 9 between 5 and the Ace (or 10 between 4 and the Ace when the joker
// stands in for the 5).
func straight(cards []trump.Card) []trump.Card {
	hasJoker := false
	vals := make([]int, 0, len(cards))
	for _, c := range cards {
		if c.IsJoker() {
			hasJoker = true
			continue
		}
		vals = append(vals, c.Value())
	}
	jokerFree := hasJoker

	gaps := 3
	if hasJoker {
		gaps = 2
	}
	for i := range gaps {
		d := vals[i+1] - vals[i]
		if d == 1 {
			continue
		}
		if jokerFree && d == 2 {
			jokerFree = false
			continue
		}
		return nil
	}

	if hasJoker {
		t := vals[3] - vals[2]
		if jokerFree {
			if t != 1 && t != 2 && t != 10 {
				return nil
			}
			return descending(cards, 3)
		}
		if t == 1 || t == 9 {
			return descending(cards, 3)
		}
		return nil
	}

	if t := vals[4] - vals[3]; t == 1 || t == 9 {
		return descending(cards, 4)
	}
	return nil
}

// descending returns cards[top], cards[top-1], ..., cards[0].
func descending(cards []trump.Card, top int) []trump.Card {
	out := make([]trump.Card, 0, top+1)
	for i := top; i >= 0; i-- {
		out = append(out, cards[i])
	}
	return out
}

func countJokers(cards []trump.Card) int {
	n := 0
	for _, c := range cards {
		if c.IsJoker() {
			n++
		}
	}
	return n
}
