// Package game runs five-card draw showdowns between two automated seats.
//
// The main type is Engine, which owns a trump.Pool and a poker.Searcher and
// plays one hand at a time: shuffle, deal two hands of five, a fixed number
// of exchange rounds, then a confrontation.
//
// # Basic Usage
//
//	pool, _ := trump.NewPool(trump.WithRand(randutil.New(42)))
//	engine := game.NewEngine(pool, poker.NewSearcher(), logger)
//	result, err := engine.PlayHand()
//
// # Exchange Rounds
//
// Both seats ask the searcher for their discards concurrently. The seats then
// exchange in seat order: each discarded card is replaced by the card at the
// front of the pool's discard/draw pile, and the discarded card goes to the
// back of the pile. Hands are re-sorted after every round.
package game
