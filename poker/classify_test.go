package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fivedraw/trump"
)

func hand(t *testing.T, codes string) *trump.Deck {
	t.Helper()
	cards, err := trump.ParseCards(codes)
	require.NoError(t, err)
	return trump.NewDeck(nil, cards)
}

func codesOf(cards []trump.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hand     string
		category Category
		tieBreak []string
	}{
		// Joker-free
		{"high card", "s2 h5 d7 c9 s11", HighCard, []string{"s11", "c9", "d7", "h5", "s2"}},
		{"one pair", "s2 h2 d7 c9 s11", OnePair, []string{"s2", "s11", "c9", "d7"}},
		{"two pair", "s2 h2 d7 c7 s11", TwoPair, []string{"d7", "s2", "s11"}},
		{"three of a kind", "s7 h7 d7 c2 s11", ThreeOfAKind, []string{"s7", "s11", "c2"}},
		{"straight", "s3 h4 d5 c6 s7", Straight, []string{"s7", "c6", "d5", "h4", "s3"}},
		{"ace low straight", "s1 h2 d3 c4 s5", Straight, []string{"s1", "s5", "c4", "d3", "h2"}},
		{"ace high straight", "s10 h11 d12 c13 s1", Straight, []string{"s1", "c13", "d12", "h11", "s10"}},
		{"flush", "h2 h5 h7 h9 h11", Flush, []string{"h11", "h9", "h7", "h5", "h2"}},
		{"full house trips high", "s7 h7 d7 c2 s2", FullHouse, []string{"s7", "s2"}},
		{"full house trips low", "s2 h2 d2 c7 s7", FullHouse, []string{"s2", "s7"}},
		{"four aces", "s1 h1 d1 c1 s2", FourOfAKind, []string{"s1", "s2"}},
		{"four low", "s2 h2 d2 c2 s9", FourOfAKind, []string{"s2", "s9"}},
		{"straight flush", "d5 d6 d7 d8 d9", StraightFlush, []string{"d9", "d8", "d7", "d6", "d5"}},
		{"royal straight flush", "s10 s11 s12 s13 s1", RoyalStraightFlush, []string{"s1", "s13", "s12", "s11", "s10"}},
		{"ace low straight flush counts as royal", "h1 h2 h3 h4 h5", RoyalStraightFlush, []string{"h1", "h5", "h4", "h3", "h2"}},

		// One joker
		{"joker pair", "s2 h5 d7 c9 Joker", OnePair.WithJoker(), []string{"c9", "d7", "h5", "s2"}},
		{"joker three of a kind", "s2 h2 d7 c9 Joker", ThreeOfAKind.WithJoker(), []string{"s2", "c9", "d7"}},
		{"joker straight", "s2 h3 d4 c6 Joker", Straight.WithJoker(), []string{"c6", "d4", "h3", "s2"}},
		{"joker straight open end", "s3 h4 d5 c6 Joker", Straight.WithJoker(), []string{"c6", "d5", "h4", "s3"}},
		{"joker ace low straight", "h2 d3 c4 s1 Joker", Straight.WithJoker(), []string{"s1", "c4", "d3", "h2"}},
		{"joker flush", "h2 h5 h7 h9 Joker", Flush.WithJoker(), []string{"h9", "h7", "h5", "h2"}},
		{"joker full house", "s2 h2 d7 c7 Joker", FullHouse.WithJoker(), []string{"d7", "s2"}},
		{"joker four of a kind low kicker", "s7 h7 d7 c2 Joker", FourOfAKind.WithJoker(), []string{"s7", "c2"}},
		{"joker four of a kind high kicker", "s7 h7 d7 c13 Joker", FourOfAKind.WithJoker(), []string{"s7", "c13"}},
		{"joker straight flush", "d5 d6 d7 d8 Joker", StraightFlush.WithJoker(), []string{"d8", "d7", "d6", "d5"}},
		{"joker royal from ten", "s10 s11 s12 s13 Joker", RoyalStraightFlush.WithJoker(), []string{"s13", "s12", "s11", "s10"}},
		{"joker royal from ace", "s11 s12 s13 s1 Joker", RoyalStraightFlush.WithJoker(), []string{"s1", "s13", "s12", "s11"}},
		{"five of a kind", "s7 h7 d7 c7 Joker", FiveOfAKind.WithJoker(), []string{"s7"}},
		{"ace low with idle joker is not a straight", "s3 h4 d5 s1 Joker", OnePair.WithJoker(), []string{"s1", "d5", "h4", "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cls, err := Classify(hand(t, tt.hand))
			require.NoError(t, err)
			assert.Equal(t, tt.category, cls.Category, "got %s", cls.Category)
			assert.Equal(t, tt.tieBreak, codesOf(cls.TieBreak))
		})
	}
}

func TestClassifyLeavesHandUntouched(t *testing.T) {
	t.Parallel()
	h := hand(t, "s13 Joker h2 d2 c9")
	before := codesOf(h.Cards())

	_, err := Classify(h)
	require.NoError(t, err)
	assert.Equal(t, before, codesOf(h.Cards()))
}

func TestClassifyIgnoresInputOrder(t *testing.T) {
	t.Parallel()
	a, err := Classify(hand(t, "s1 h1 d1 c1 s2"))
	require.NoError(t, err)
	b, err := Classify(hand(t, "s2 c1 d1 h1 s1"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClassifyErrors(t *testing.T) {
	t.Parallel()

	_, err := Classify(hand(t, "s1 h1 d1 c1"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = Classify(hand(t, "s1 h1 d1 c1 s2 s3"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = Classify(hand(t, "s1 h1 d1 Joker Joker"))
	assert.ErrorIs(t, err, ErrUnsupportedHand)
}

func TestCountRanksRejectsImpossibleShapes(t *testing.T) {
	t.Parallel()
	// five identical ranks without a joker cannot come from one catalog
	cards := trump.MustParseCards("s7 s7 s7 s7 s7")
	_, _, err := countRanks(cards, false)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestJokerAlwaysScoresOneBelow(t *testing.T) {
	t.Parallel()
	for _, id := range []Category{OnePair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalStraightFlush, FiveOfAKind} {
		name, note := CategoryName(id.WithJoker())
		want, _ := CategoryName(id)
		assert.Equal(t, want, name)
		assert.Equal(t, AnnotationJoker, note)
	}
}
