package fishbait

import (
	"context"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/agents"
)

// BoardNeedsCards is the typed form of BoardNeedsCardsAgent.
type BoardNeedsCards struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ActionInterface is the typed form of ActionInterfaceAgent.
type ActionInterface struct {
	Action Action  `json:"action"`
	Size   float64 `json:"size"`
}

// GameState is the typed form of GameStateAgent.
type GameState struct {
	Players         int                `json:"players"`
	BigBlind        float64            `json:"bigBlind"`
	SmallBlind      float64            `json:"smallBlind"`
	Ante            float64            `json:"ante"`
	BigBlindAnte    bool               `json:"bigBlindAnte"`
	BlindBeforeAnte bool               `json:"blindBeforeAnte"`
	Rake            float64            `json:"rake"`
	RakeCap         float64            `json:"rakeCap"`
	NoFlopNoDrop    bool               `json:"noFlopNoDrop"`
	Button          int                `json:"button"`
	InProgress      bool               `json:"inProgress"`
	Round           Round              `json:"round"`
	ActingPlayer    int                `json:"actingPlayer"`
	Folded          []bool             `json:"folded"`
	PlayersLeft     int                `json:"playersLeft"`
	PlayersAllIn    int                `json:"playersAllIn"`
	Pot             float64            `json:"pot"`
	Bets            []float64          `json:"bets"`
	Stack           []float64          `json:"stack"`
	MinRaise        float64            `json:"minRaise"`
	NeededToCall    float64            `json:"neededToCall"`
	Hands           []*[]*Card         `json:"hands"`
	Board           []*Card            `json:"board"`
	FishbaitSeat    int                `json:"fishbaitSeat"`
	PlayerNeedsHand *int               `json:"playerNeedsHand"`
	BoardNeedsCards *BoardNeedsCards   `json:"boardNeedsCards"`
	CanMuck         bool               `json:"canMuck"`
	PlayerNames     []string           `json:"playerNames"`
	KnownCards      []bool             `json:"knownCards"`
	LastAction      []*ActionInterface `json:"lastAction"`
	KnownBoard      []bool             `json:"knownBoard"`
}

// Mucked reports whether player i showed an all-null hand.
func (g GameState) Mucked(i int) bool {
	if i < 0 || i >= len(g.Hands) || g.Hands[i] == nil {
		return false
	}
	for _, c := range *g.Hands[i] {
		if c != nil {
			return false
		}
	}
	return true
}

// GameStateTypedAgent stamps a GameState struct.
func GameStateTypedAgent() customs.Agent[GameState] {
	return agents.Bind[GameState](GameStateAgent())
}

// DecodeGameState stamps a decoded JSON tree (or a GameState) as GameState.
func DecodeGameState(ctx context.Context, v any) (GameState, error) {
	return GameStateTypedAgent().Decode(ctx, v)
}
