package trump

import "errors"

var (
	// ErrInvalidSuit is returned when a card code does not start with s, h, d or c.
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidRank is returned when a card code's rank is not an integer in [1,13].
	ErrInvalidRank = errors.New("invalid rank")
	// ErrCardNotFound is returned when a named card is absent from a deck.
	ErrCardNotFound = errors.New("card not found")
	// ErrInsufficientCards is returned when a deal asks for more cards than the catalog holds.
	ErrInsufficientCards = errors.New("insufficient cards")
	// ErrIndexOutOfRange is returned when a deck position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidPoolConfig is returned for unusable pool options or deal arguments.
	ErrInvalidPoolConfig = errors.New("invalid pool config")
)
