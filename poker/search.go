package poker

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fivedraw/trump"
)

// minScoredCategory is the weakest category worth scoring; anything at or
// below it is skipped.
const minScoredCategory = OnePair

// TieBreak decides which candidate wins when several reach the best score.
type TieBreak int

const (
	// TieFirstSeen keeps the earliest candidate in enumeration order.
	TieFirstSeen TieBreak = iota
	// TieLastSeen keeps the latest candidate in enumeration order.
	TieLastSeen
)

func (t TieBreak) String() string {
	switch t {
	case TieFirstSeen:
		return "first"
	case TieLastSeen:
		return "last"
	default:
		return "unknown"
	}
}

// ParseTieBreak decodes "first" or "last".
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "first", "":
		return TieFirstSeen, nil
	case "last":
		return TieLastSeen, nil
	}
	return TieFirstSeen, fmt.Errorf("unknown tie-break policy %q", s)
}

// Searcher recommends discards by exhaustively scoring every replacement
// of the hand's first four cards drawn from the pool catalog.
type Searcher struct {
	workers int
	tie     TieBreak
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers sets the number of partitions searched in parallel. Values
// below one select DefaultWorkers.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n < 1 {
			n = DefaultWorkers()
		}
		s.workers = n
	}
}

// WithTieBreak sets the equal-score policy.
func WithTieBreak(t TieBreak) Option {
	return func(s *Searcher) { s.tie = t }
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock used to time searches.
func WithClock(c quartz.Clock) Option {
	return func(s *Searcher) {
		if c != nil {
			s.clock = c
		}
	}
}

// DefaultWorkers returns the CPU count minus one, at least one.
func DefaultWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// NewSearcher returns a Searcher using DefaultWorkers and TieFirstSeen.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		workers: DefaultWorkers(),
		tie:     TieFirstSeen,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommendation is the outcome of a discard search.
type Recommendation struct {
	// Discard holds the hand positions (0-4) to throw away, ascending.
	Discard []int
	// Best is the winning candidate hand in deck order; nil when no
	// candidate scored.
	Best       []trump.Card
	Category   Category
	Score      int
	Candidates int
	Partitions int
	Elapsed    time.Duration
}

// BestDiscard returns the hand positions to discard. See Search.
func (s *Searcher) BestDiscard(pool *trump.Pool, hand *trump.Deck) ([]int, error) {
	rec, err := s.Search(pool, hand)
	if err != nil {
		return nil, err
	}
	return rec.Discard, nil
}

// BestDiscardAsync runs BestDiscard on a background goroutine and calls
// done exactly once with its result. done never runs on the caller's
// goroutine. The pool and hand are snapshotted before BestDiscardAsync
// returns; there is no de-duplication of concurrent requests.
func (s *Searcher) BestDiscardAsync(pool *trump.Pool, hand *trump.Deck, done func([]int, error)) {
	snap, err := newSnapshot(pool, hand)
	go func() {
		if err != nil {
			done(nil, err)
			return
		}
		rec, err := s.run(snap)
		if err != nil {
			done(nil, err)
			return
		}
		done(rec.Discard, nil)
	}()
}

// Search scores every candidate hand made of the hand's last card (the
// anchor) plus four cards from the catalog, and recommends discarding the
// hand cards missing from the best candidate.
//
// The anchor and every joker are removed from the candidate catalog; the
// remaining hand cards stay in it so that keeping them can be rewarded.
// A hand holding more than one joker is rejected with ErrUnsupportedHand.
// The pool and hand must not be mutated while the search runs.
func (s *Searcher) Search(pool *trump.Pool, hand *trump.Deck) (Recommendation, error) {
	snap, err := newSnapshot(pool, hand)
	if err != nil {
		return Recommendation{}, err
	}
	return s.run(snap)
}

// snapshot is the immutable input shared by every partition.
type snapshot struct {
	catalog []trump.Card
	anchor  trump.Card
	hand    []trump.Card
}

func newSnapshot(pool *trump.Pool, hand *trump.Deck) (snapshot, error) {
	if hand.Len() != HandSize {
		return snapshot{}, fmt.Errorf("%w: got %d", ErrHandSize, hand.Len())
	}
	cards := hand.Cards()
	anchor := cards[HandSize-1]
	if jokers := countJokers(cards); jokers > 1 {
		return snapshot{}, fmt.Errorf("%w: %d jokers", ErrUnsupportedHand, jokers)
	}

	catalog := make([]trump.Card, 0, pool.Len())
	skipped := false
	for _, c := range pool.Cards() {
		if c.IsJoker() {
			continue
		}
		if !skipped && c.Code() == anchor.Code() {
			skipped = true
			continue
		}
		catalog = append(catalog, c)
	}
	return snapshot{catalog: catalog, anchor: anchor, hand: cards}, nil
}

// candidate is a partition's best find.
type candidate struct {
	found bool
	score int
	cls   Classification
	cards [HandSize]trump.Card
}

func (s *Searcher) accept(score int, best candidate) bool {
	if !best.found {
		return true
	}
	if s.tie == TieLastSeen {
		return score >= best.score
	}
	return score > best.score
}

func (s *Searcher) run(snap snapshot) (Recommendation, error) {
	start := s.clock.Now()
	combos := combinations4(len(snap.catalog))

	parts := min(s.workers, len(combos))
	var chunks [][][4]uint8
	if parts > 0 {
		size := (len(combos) + parts - 1) / parts
		for lo := 0; lo < len(combos); lo += size {
			chunks = append(chunks, combos[lo:min(lo+size, len(combos))])
		}
	}

	results := make([]candidate, len(chunks))
	var g errgroup.Group
	for i, chunk := range chunks {
		g.Go(func() error {
			best, err := s.scan(snap, chunk)
			if err != nil {
				return err
			}
			results[i] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Recommendation{}, err
	}

	var best candidate
	for _, r := range results {
		if r.found && s.accept(r.score, best) {
			best = r
		}
	}

	rec := Recommendation{
		Discard:    []int{},
		Candidates: len(combos),
		Partitions: len(chunks),
	}
	if best.found {
		rec.Best = best.cards[:]
		rec.Category = best.cls.Category
		rec.Score = best.score
		for i, c := range snap.hand {
			if !containsCode(best.cards[:], c.Code()) {
				rec.Discard = append(rec.Discard, i)
			}
		}
	}
	rec.Elapsed = s.clock.Since(start)

	s.logger.Debug("discard search complete",
		"hand", trump.NewDeck(nil, snap.hand).String(),
		"candidates", rec.Candidates,
		"partitions", rec.Partitions,
		"score", rec.Score,
		"category", rec.Category,
		"discard", rec.Discard,
		"elapsed", rec.Elapsed)
	return rec, nil
}

// scan scores one partition of candidate combinations.
func (s *Searcher) scan(snap snapshot, combos [][4]uint8) (candidate, error) {
	var best candidate
	var hand [HandSize]trump.Card
	for _, combo := range combos {
		hand[0] = snap.anchor
		for k, idx := range combo {
			hand[k+1] = snap.catalog[idx]
		}
		if !distinctCodes(hand[:]) {
			continue
		}
		trump.SortCards(hand[:])

		cls, err := classifySorted(hand[:])
		if err != nil {
			return candidate{}, fmt.Errorf("scoring %v: %w", hand, err)
		}
		if cls.Category <= minScoredCategory {
			continue
		}

		score := s.score(snap.hand, hand[:], cls)
		if s.accept(score, best) {
			best = candidate{found: true, score: score, cls: cls, cards: hand}
		}
	}
	return best, nil
}

// score rewards strong categories and keeping original cards, and
// penalises weak kickers for pair-family and four-of-a-kind hands.
func (s *Searcher) score(original, cand []trump.Card, cls Classification) int {
	overlap := 0
	for _, c := range original {
		if containsCode(cand, c.Code()) {
			overlap++
		}
	}
	score := 100 - 20*(HandSize-overlap) + int(cls.Category)

	switch {
	case cls.Category <= ThreeOfAKind:
		score -= 14 - kickerValue(cls.TieBreak[2])
	case cls.Category == FourOfAKind || cls.Category == FourOfAKind.WithJoker():
		score -= 14 - kickerValue(cls.TieBreak[1])
	}
	return score
}

func kickerValue(c trump.Card) int {
	if c.IsJoker() || c.Rank() == trump.Ace {
		return 14
	}
	return int(c.Rank())
}

func containsCode(cards []trump.Card, code string) bool {
	for _, c := range cards {
		if c.Code() == code {
			return true
		}
	}
	return false
}

func distinctCodes(cards []trump.Card) bool {
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Code() == cards[j].Code() {
				return false
			}
		}
	}
	return true
}

// combinations4 lists every 4-index combination of [0,n) in lexicographic
// order.
func combinations4(n int) [][4]uint8 {
	if n < 4 {
		return nil
	}
	out := make([][4]uint8, 0, n*(n-1)*(n-2)*(n-3)/24)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					out = append(out, [4]uint8{uint8(a), uint8(b), uint8(c), uint8(d)})
				}
			}
		}
	}
	return out
}
