package poker

import (
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fivedraw/internal/randutil"
	"github.com/lox/fivedraw/trump"
)

func TestConfront(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		left  string
		right string
		want  Outcome
	}{
		{"pair beats high card", "s13 h13 d2 c3 s4", "s2 h5 d7 c9 s11", LeftWins},
		{"high card loses to pair", "s2 h5 d7 c9 s11", "s13 h13 d2 c3 s4", RightWins},
		{"higher pair wins", "s13 h13 d2 c3 s4", "s9 h9 d12 c11 s10", LeftWins},
		{"aces beat kings", "s1 h1 d2 c3 s4", "s13 h13 d12 c11 s10", LeftWins},
		{"only the first tie-break card counts", "s13 h13 d2 c3 s4", "d13 c13 h5 c6 s7", Tie},
		{"joker-free beats joker of the same name", "s7 h7 d7 c2 s11", "s9 h9 d12 c11 Joker", LeftWins},
		{"spade royal beats heart royal", "s10 s11 s12 s13 s1", "h10 h11 h12 h13 h1", LeftWins},
		{"joker royal loses to natural royal", "d10 d11 d12 d13 Joker", "c10 c11 c12 c13 c1", RightWins},
		{"five of a kind beats everything", "s7 h7 d7 c7 Joker", "s10 s11 s12 s13 s1", LeftWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Confront(hand(t, tt.left), hand(t, tt.right))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Outcome, "%s vs %s", res.Left, res.Right)

			rev, err := Confront(hand(t, tt.right), hand(t, tt.left))
			require.NoError(t, err)
			assert.Equal(t, -tt.want, rev.Outcome)
		})
	}
}

func TestConfrontErrors(t *testing.T) {
	t.Parallel()
	_, err := Confront(hand(t, "s1 h1"), hand(t, "s2 h5 d7 c9 s11"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = Confront(hand(t, "s2 h5 d7 c9 s11"), hand(t, "Joker Joker s2 h5 d7"))
	assert.ErrorIs(t, err, ErrUnsupportedHand)
}

func TestCompareSameSuitRoyalIsInvariantViolation(t *testing.T) {
	t.Parallel()
	royal, err := Classify(hand(t, "s10 s11 s12 s13 s1"))
	require.NoError(t, err)
	_, err = Compare(royal, royal)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, err = Compare(Classification{Category: Flush}, Classification{Category: Flush})
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestConfrontIsAntisymmetric(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 300; seed++ {
		pool, err := trump.NewPool(trump.WithRand(randutil.New(seed)))
		require.NoError(t, err)
		pool.Shuffle()
		require.NoError(t, pool.DealFixed(2, HandSize))
		a, b := pool.Decks()[0], pool.Decks()[1]

		ab, err := Confront(a, b)
		require.NoError(t, err, "seed %d", seed)
		ba, err := Confront(b, a)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, ab.Outcome, -ba.Outcome, "seed %d: %s vs %s", seed, a, b)
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "left wins", LeftWins.String())
	assert.Equal(t, "right wins", RightWins.String())
	assert.Equal(t, "tie", Tie.String())
}

func toReference(t *testing.T, d *trump.Deck) *[5]ref.Card {
	t.Helper()
	suits := map[trump.Suit]ref.Suit{
		trump.Spade:   ref.Spade,
		trump.Heart:   ref.Heart,
		trump.Diamond: ref.Diamond,
		trump.Club:    ref.Club,
	}
	var out [5]ref.Card
	for i, c := range d.Cards() {
		rc, err := ref.MakeCard(suits[c.Suit()], ref.Rank(c.Rank()))
		require.NoError(t, err)
		out[i] = rc
	}
	return &out
}

// Joker-free categories below the straight flush must order hands the same
// way a standard evaluator does.
func TestCategoryOrderMatchesReferenceEvaluator(t *testing.T) {
	t.Parallel()
	checked := 0
	for seed := int64(1); seed <= 2000; seed++ {
		pool, err := trump.NewPool(trump.WithJokers(0), trump.WithRand(randutil.New(seed)))
		require.NoError(t, err)
		pool.Shuffle()
		require.NoError(t, pool.DealFixed(2, HandSize))
		a, b := pool.Decks()[0], pool.Decks()[1]

		ca, err := Classify(a)
		require.NoError(t, err)
		cb, err := Classify(b)
		require.NoError(t, err)
		if ca.Category == cb.Category || ca.Category >= StraightFlush.WithJoker() || cb.Category >= StraightFlush.WithJoker() {
			continue
		}
		checked++

		ea, eb := ref.Eval5(toReference(t, a)), ref.Eval5(toReference(t, b))
		assert.Equal(t, ca.Category > cb.Category, ea > eb,
			"seed %d: %s (%s) vs %s (%s)", seed, a, ca.Category, b, cb.Category)
	}
	assert.Greater(t, checked, 500)
}
