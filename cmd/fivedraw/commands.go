package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fivedraw/internal/game"
	"github.com/lox/fivedraw/poker"
	"github.com/lox/fivedraw/trump"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func categoryLabel(c poker.Category) string {
	name, note := poker.CategoryName(c)
	label := categoryStyle.Render(name)
	if note != poker.AnnotationNone {
		label += " " + noteStyle.Render("("+note+")")
	}
	return label
}

func outcomeLabel(o poker.Outcome, left, right string) string {
	switch o {
	case poker.LeftWins:
		return winStyle.Render(left + " wins")
	case poker.RightWins:
		return winStyle.Render(right + " wins")
	default:
		return tieStyle.Render("Tie")
	}
}

func joinCodes(cards []trump.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Code()
	}
	return strings.Join(parts, " ")
}

// ClassifyCmd prints the category of a hand.
type ClassifyCmd struct {
	Hand []string `arg:"" help:"Five card codes, e.g. 's1 h1 d1 c1 s2'"`
}

func (cmd *ClassifyCmd) Run(app *App) error {
	hand, err := parseHand(cmd.Hand...)
	if err != nil {
		return err
	}
	cls, err := poker.Classify(hand)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "%s %s\n", headerStyle.Render("Hand:"), handStyle.Render(hand.String()))
	fmt.Fprintf(app.out, "%s %s [%d]\n", headerStyle.Render("Category:"), categoryLabel(cls.Category), int(cls.Category))
	fmt.Fprintf(app.out, "%s %s\n", headerStyle.Render("Tie-break:"), joinCodes(cls.TieBreak))
	return nil
}

// ConfrontCmd compares two hands.
type ConfrontCmd struct {
	Left  string `arg:"" help:"Left hand, quoted"`
	Right string `arg:"" help:"Right hand, quoted"`
}

func (cmd *ConfrontCmd) Run(app *App) error {
	left, err := parseHand(cmd.Left)
	if err != nil {
		return fmt.Errorf("left hand: %w", err)
	}
	right, err := parseHand(cmd.Right)
	if err != nil {
		return fmt.Errorf("right hand: %w", err)
	}
	res, err := poker.Confront(left, right)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("Left"), handStyle.Render(left.String()), categoryLabel(res.Left))
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("Right"), handStyle.Render(right.String()), categoryLabel(res.Right))
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "%s %s [%d]\n", headerStyle.Render("Result:"), outcomeLabel(res.Outcome, "Left", "Right"), int(res.Outcome))
	return nil
}

// DiscardCmd recommends discards for a hand against the configured pool.
type DiscardCmd struct {
	Hand     []string `arg:"" help:"Five card codes; the last card is held"`
	Workers  int      `short:"w" help:"Parallel partitions (overrides config)"`
	TieBreak string   `help:"Equal-score policy: first or last (overrides config)"`
}

func (cmd *DiscardCmd) Run(app *App) error {
	hand, err := parseHand(cmd.Hand...)
	if err != nil {
		return err
	}
	if cmd.Workers > 0 {
		app.cfg.Search.Workers = cmd.Workers
	}
	if cmd.TieBreak != "" {
		app.cfg.Search.TieBreak = cmd.TieBreak
	}
	pool, err := app.newPool()
	if err != nil {
		return err
	}
	searcher, err := app.newSearcher()
	if err != nil {
		return err
	}

	rec, err := searcher.Search(pool, hand)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "%s %s\n", headerStyle.Render("Hand:"), handStyle.Render(hand.String()))
	if rec.Best == nil {
		fmt.Fprintf(app.out, "%s keep all (no candidate beats a pair)\n", headerStyle.Render("Discard:"))
		return nil
	}
	positions := make([]string, len(rec.Discard))
	for i, p := range rec.Discard {
		c, err := hand.Get(p)
		if err != nil {
			return err
		}
		positions[i] = fmt.Sprintf("%d:%s", p, c.Code())
	}
	discard := strings.Join(positions, " ")
	if discard == "" {
		discard = "none"
	}
	fmt.Fprintf(app.out, "%s %s\n", headerStyle.Render("Discard:"), discard)
	fmt.Fprintf(app.out, "%s %s %s\n", headerStyle.Render("Target:"), joinCodes(rec.Best), categoryLabel(rec.Category))
	fmt.Fprintf(app.out, "%s %d over %d candidates in %s\n",
		headerStyle.Render("Score:"), rec.Score, rec.Candidates, rec.Elapsed.Round(time.Microsecond))
	return nil
}

// DealCmd shuffles the pool and deals it.
type DealCmd struct {
	Decks int `short:"n" default:"2" help:"Number of decks to deal"`
	Size  int `short:"s" default:"5" help:"Cards per deck; 0 deals the whole catalog evenly"`
}

func (cmd *DealCmd) Run(app *App) error {
	pool, err := app.newPool()
	if err != nil {
		return err
	}
	pool.Shuffle()
	if cmd.Size == 0 {
		err = pool.DealEven(cmd.Decks)
	} else {
		err = pool.DealFixed(cmd.Decks, cmd.Size)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', 0)
	for i, d := range pool.Decks() {
		d.Sort()
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render(fmt.Sprintf("Deck %d", i)), handStyle.Render(joinCodes(d.Cards())))
	}
	if cmd.Size != 0 {
		fmt.Fprintf(w, "%s\t%d cards\n", headerStyle.Render("Pile"), pool.Discard().Len())
	}
	return w.Flush()
}

// ShowdownCmd plays automated hands between two seats.
type ShowdownCmd struct {
	Hands  int `short:"n" default:"1" help:"Number of hands to play"`
	Rounds int `short:"r" default:"2" help:"Exchange rounds per hand"`
}

func (cmd *ShowdownCmd) Run(app *App) error {
	pool, err := app.newPool()
	if err != nil {
		return err
	}
	searcher, err := app.newSearcher()
	if err != nil {
		return err
	}
	engine := game.NewEngine(pool, searcher, app.logger, game.WithRounds(cmd.Rounds))

	var wins [game.Seats]int
	for i := range cmd.Hands {
		result, err := engine.PlayHand()
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if err := printShowdown(app, i+1, result); err != nil {
			return err
		}
		switch result.Result.Outcome {
		case poker.LeftWins:
			wins[0]++
		case poker.RightWins:
			wins[1]++
		}
	}
	if cmd.Hands > 1 {
		fmt.Fprintf(app.out, "%s seat 0: %d, seat 1: %d, ties: %d\n",
			headerStyle.Render("Totals:"), wins[0], wins[1], cmd.Hands-wins[0]-wins[1])
	}
	return nil
}

func printShowdown(app *App, n int, result *game.HandResult) error {
	fmt.Fprintln(app.out, headerStyle.Render(fmt.Sprintf("Hand %d", n)))
	w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', 0)
	for seat := range game.Seats {
		fmt.Fprintf(w, "  seat %d dealt\t%s\n", seat, joinCodes(result.Initial[seat]))
	}
	for _, ex := range result.Exchanges {
		if len(ex.Discarded) == 0 {
			fmt.Fprintf(w, "  round %d seat %d\tstands pat\n", ex.Round, ex.Seat)
			continue
		}
		fmt.Fprintf(w, "  round %d seat %d\tdiscards %s, draws %s\n",
			ex.Round, ex.Seat, joinCodes(ex.Discarded), joinCodes(ex.Drawn))
	}
	cats := [game.Seats]poker.Category{result.Result.Left, result.Result.Right}
	for seat := range game.Seats {
		fmt.Fprintf(w, "  seat %d shows\t%s\t%s\n", seat, handStyle.Render(joinCodes(result.Final[seat])), categoryLabel(cats[seat]))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(app.out, "  %s\n", outcomeLabel(result.Result.Outcome, "Seat 0", "Seat 1"))
	return err
}
