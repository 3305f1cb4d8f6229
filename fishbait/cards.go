package fishbait

import (
	"github.com/fishbait/customs"
	"github.com/fishbait/customs/agents"
)

// Card is a two-character card string: rank (2-9, T, J, Q, K, A) then suit
// (s, h, d, c).
type Card string

// NumCards is the size of the deck.
const NumCards = 52

const (
	ranks = "23456789TJQKA"
	suits = "shdc"
)

var (
	isoToCard   [NumCards]Card
	isoToSymbol [NumCards]string
	cardToISO   = make(map[Card]int, NumCards)
)

func init() {
	symbolRanks := []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	symbolSuits := []string{"♠", "♥", "♦", "♣"}
	for r := 0; r < len(ranks); r++ {
		for s := 0; s < len(suits); s++ {
			id := r*len(suits) + s
			c := Card([]byte{ranks[r], suits[s]})
			isoToCard[id] = c
			isoToSymbol[id] = symbolRanks[r] + symbolSuits[s]
			cardToISO[c] = id
		}
	}
}

// CardFromISO returns the card for an ISO id.
func CardFromISO(id int) (Card, bool) {
	if id < 0 || id >= NumCards {
		return "", false
	}
	return isoToCard[id], true
}

// ISO returns the ISO id of c.
func (c Card) ISO() (int, bool) {
	id, ok := cardToISO[c]
	return id, ok
}

// Symbol renders c with a suit symbol, e.g. "10♥".
func (c Card) Symbol() string {
	id, ok := cardToISO[c]
	if !ok {
		return ""
	}
	return isoToSymbol[id]
}

// Cards lists the deck in ISO order.
func Cards() []Card {
	out := make([]Card, NumCards)
	copy(out, isoToCard[:])
	return out
}

// CardAgent accepts exactly the 52 card strings.
func CardAgent() customs.Agent[Card] { return agents.Enum(Cards()...) }

// isoToCardPtr converts a nullable ISO id; id 0 is "2s", null stays null.
// Ids outside the deck convert to the empty Card, which CardAgent rejects.
func isoToCardPtr(id *float64) *Card {
	if id == nil {
		return nil
	}
	var c Card
	if f := *id; f == float64(int(f)) {
		c, _ = CardFromISO(int(f))
	}
	return &c
}

// BoardCardsAgent stamps the public board: an array of nullable ISO ids
// converted to nullable cards.
func BoardCardsAgent() customs.Agent[[]*Card] {
	return agents.Array(agents.Conversion(
		agents.Nullable(agents.Number()),
		isoToCardPtr,
		agents.Nullable(CardAgent()),
	))
}

// HandsAgent stamps every player's hand. An unknown hand is null; a mucked
// hand is an array of nulls and stays that way.
func HandsAgent() customs.Agent[[]*[]*Card] {
	return agents.Array(agents.Conversion(
		agents.Nullable(agents.Array(agents.Nullable(agents.Number()))),
		convertHand,
		agents.Nullable(agents.Array(agents.Nullable(CardAgent()))),
	))
}

func convertHand(ids *[]*float64) *[]*Card {
	if ids == nil {
		return nil
	}
	out := make([]*Card, len(*ids))
	for i, id := range *ids {
		out[i] = isoToCardPtr(id)
	}
	return &out
}
