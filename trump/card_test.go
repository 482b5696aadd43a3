package trump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr error
	}{
		{name: "ace of spades", input: "s1", want: MustCard(Spade, Ace)},
		{name: "king of hearts", input: "h13", want: MustCard(Heart, King)},
		{name: "ten of diamonds", input: "d10", want: MustCard(Diamond, Ten)},
		{name: "two of clubs", input: "c2", want: MustCard(Club, 2)},
		{name: "joker", input: "Joker", want: NewJoker()},
		{name: "unknown suit", input: "x5", wantErr: ErrInvalidSuit},
		{name: "upper case suit", input: "S5", wantErr: ErrInvalidSuit},
		{name: "lower case joker", input: "joker", wantErr: ErrInvalidSuit},
		{name: "empty", input: "", wantErr: ErrInvalidSuit},
		{name: "rank zero", input: "s0", wantErr: ErrInvalidRank},
		{name: "rank fourteen", input: "h14", wantErr: ErrInvalidRank},
		{name: "missing rank", input: "d", wantErr: ErrInvalidRank},
		{name: "signed rank", input: "c+5", wantErr: ErrInvalidRank},
		{name: "letter rank", input: "sK", wantErr: ErrInvalidRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range Suits {
		for _, r := range Ranks() {
			code := MustCard(s, r).Code()
			c, err := ParseCard(code)
			require.NoError(t, err)
			assert.Equal(t, code, c.Code())
			assert.Equal(t, MustCard(s, r), c)
		}
	}

	j, err := ParseCard(JokerCode)
	require.NoError(t, err)
	assert.Equal(t, JokerCode, j.Code())
	assert.True(t, j.IsJoker())
}

func TestCardAccessors(t *testing.T) {
	t.Parallel()
	c := MustCard(Heart, Queen)
	assert.Equal(t, Heart, c.Suit())
	assert.Equal(t, Queen, c.Rank())
	assert.Equal(t, "♥", c.SuitMark())
	assert.Equal(t, "Q", c.RankMark())
	assert.Equal(t, 3, c.SuitPower())
	assert.Equal(t, "h12", c.Code())
	assert.Equal(t, "♥Q", c.String())

	j := NewJoker()
	assert.Equal(t, NoSuit, j.Suit())
	assert.Equal(t, NoRank, j.Rank())
	assert.Equal(t, JokerCode, j.SuitMark())
	assert.Equal(t, JokerCode, j.RankMark())
	assert.Equal(t, 10, j.SuitPower())
	assert.Equal(t, JokerCode, j.String())
}

func TestNewCardValidation(t *testing.T) {
	t.Parallel()
	_, err := NewCard(NoSuit, Ace)
	assert.ErrorIs(t, err, ErrInvalidSuit)
	_, err = NewCard(Spade, 14)
	assert.ErrorIs(t, err, ErrInvalidRank)
	assert.Panics(t, func() { MustCard(Club, 0) })
}

func TestCardOrdering(t *testing.T) {
	t.Parallel()
	ace := MustParseCard("c1")
	king := MustParseCard("s13")
	two := MustParseCard("h2")
	otherAce := MustParseCard("s1")
	joker := NewJoker()

	assert.True(t, ace.Greater(king), "ace ranks above king")
	assert.True(t, king.Less(ace))
	assert.True(t, two.Less(king))
	assert.False(t, ace.Greater(otherAce), "equal ranks have no strict winner")
	assert.True(t, ace.GreaterEq(otherAce))
	assert.True(t, ace.LessEq(otherAce))

	assert.True(t, joker.Greater(ace))
	assert.True(t, ace.Less(joker))
	assert.False(t, ace.Greater(joker))

	other := NewJoker()
	assert.False(t, joker.Greater(other))
	assert.False(t, joker.Less(other))
	assert.True(t, joker.GreaterEq(other))
	assert.True(t, joker.LessEq(other))
}

func TestCardMatches(t *testing.T) {
	t.Parallel()
	assert.True(t, MustParseCard("s5").Matches(MustParseCard("h5")), "suit is irrelevant")
	assert.False(t, MustParseCard("s5").Matches(MustParseCard("s6")))
	assert.True(t, NewJoker().Matches(MustParseCard("d9")))
	assert.True(t, MustParseCard("d9").Matches(NewJoker()))

	assert.True(t, MustParseCard("s5").SuitMatches(MustParseCard("s9")))
	assert.False(t, MustParseCard("s5").SuitMatches(MustParseCard("h5")))
	assert.True(t, NewJoker().SuitMatches(MustParseCard("c2")))

	assert.True(t, MustParseCard("s2").SuitGreater(MustParseCard("h1")))
	assert.True(t, MustParseCard("c13").SuitLess(MustParseCard("d2")))
	assert.False(t, MustParseCard("c13").SuitGreater(MustParseCard("c2")))
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("s1 h1,d1  c1\tJoker")
	require.NoError(t, err)
	require.Len(t, cards, 5)
	assert.Equal(t, "c1", cards[3].Code())
	assert.True(t, cards[4].IsJoker())

	_, err = ParseCards("s1 q2")
	assert.ErrorIs(t, err, ErrInvalidSuit)

	assert.Empty(t, MustParseCards(""))
	assert.Panics(t, func() { MustParseCards("s99") })
}
