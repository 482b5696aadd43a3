// Package poker classifies five-card hands with at most one joker, decides
// confrontations and searches for the best discard.
package poker

// Category ranks a classified hand; higher is stronger. A hand holding a
// joker scores one below the joker-free category of the same name.
type Category int

const (
	HighCard           Category = 0
	OnePair            Category = 2
	TwoPair            Category = 3
	ThreeOfAKind       Category = 5
	Straight           Category = 7
	Flush              Category = 9
	FullHouse          Category = 11
	FourOfAKind        Category = 13
	StraightFlush      Category = 15
	RoyalStraightFlush Category = 17
	FiveOfAKind        Category = 19
)

// Annotations returned by CategoryName next to the display name.
const (
	AnnotationNone  = ""
	AnnotationBust  = "bust"
	AnnotationJoker = "Joker"
	AnnotationError = "Error"
)

// UnknownCategory is the display name for ids that map to no category.
const UnknownCategory = "Unknown"

var categoryNames = map[Category]string{
	HighCard:           "High Card",
	OnePair:            "One Pair",
	TwoPair:            "Two Pair",
	ThreeOfAKind:       "Three of a Kind",
	Straight:           "Straight",
	Flush:              "Flush",
	FullHouse:          "Full House",
	FourOfAKind:        "Four of a Kind",
	StraightFlush:      "Straight Flush",
	RoyalStraightFlush: "Royal Straight Flush",
	FiveOfAKind:        "Five of a Kind",
}

// WithJoker returns the joker-reduced id of c.
func (c Category) WithJoker() Category {
	return c - 1
}

// CategoryName returns the display name of id and its annotation. Ids not in
// the name table are read as joker-reduced and looked up one higher; ids that
// still do not resolve return UnknownCategory with AnnotationError.
func CategoryName(id Category) (string, string) {
	if name, ok := categoryNames[id]; ok {
		if id == HighCard {
			return name, AnnotationBust
		}
		return name, AnnotationNone
	}
	if name, ok := categoryNames[id+1]; ok {
		return name, AnnotationJoker
	}
	return UnknownCategory, AnnotationError
}

// String returns the display name, with the annotation in parentheses.
func (c Category) String() string {
	name, note := CategoryName(c)
	if note == AnnotationNone {
		return name
	}
	return name + " (" + note + ")"
}
