package fishbait

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
)

// ErrCardsUnknown is returned when a showdown needs a card the state does not
// reveal.
var ErrCardsUnknown = errors.New("fishbait: cards not known")

// Poker converts c for hand evaluation.
func (c Card) Poker() (poker.Card, error) {
	id, ok := c.ISO()
	if !ok {
		var zero poker.Card
		return zero, fmt.Errorf("fishbait: %q is not a card", string(c))
	}
	r, s := id/len(suits), id%len(suits)
	// poker ranks run ace=1, 2..13; suits run club, diamond, heart, spade
	rank := r + 2
	if ranks[r] == 'A' {
		rank = 1
	}
	return poker.MakeCard(poker.Suit(len(suits)-1-s), poker.Rank(rank))
}

// Strength is the value of a seven-card hand. Higher scores win; equal scores
// split the pot.
type Strength struct {
	Score       int16
	Description string
}

// Showdown evaluates player i's hole cards over the full board.
func (g GameState) Showdown(i int) (Strength, error) {
	if i < 0 || i >= len(g.Hands) || g.Hands[i] == nil || len(*g.Hands[i]) != 2 {
		return Strength{}, fmt.Errorf("%w: hand of player %d", ErrCardsUnknown, i)
	}
	if len(g.Board) != 5 {
		return Strength{}, fmt.Errorf("%w: board has %d slots", ErrCardsUnknown, len(g.Board))
	}
	var seven [7]poker.Card
	all := append(append([]*Card{}, g.Board...), *g.Hands[i]...)
	for k, c := range all {
		if c == nil {
			return Strength{}, fmt.Errorf("%w: player %d", ErrCardsUnknown, i)
		}
		pc, err := c.Poker()
		if err != nil {
			return Strength{}, err
		}
		seven[k] = pc
	}
	desc, err := poker.Describe(seven[:])
	if err != nil {
		return Strength{}, err
	}
	return Strength{Score: poker.Eval7(&seven), Description: desc}, nil
}

// Winners returns the seats with the best showdown among players who have
// not folded and whose cards are known. It returns nil when nobody qualifies.
func (g GameState) Winners() []int {
	var (
		best    int16
		winners []int
	)
	for i := range g.Hands {
		if i < len(g.Folded) && g.Folded[i] {
			continue
		}
		st, err := g.Showdown(i)
		if err != nil {
			continue
		}
		switch {
		case winners == nil || st.Score > best:
			best, winners = st.Score, []int{i}
		case st.Score == best:
			winners = append(winners, i)
		}
	}
	return winners
}
