package fishbait

import (
	"github.com/fishbait/customs"
	"github.com/fishbait/customs/agents"
)

// Round is the betting round the game is in.
type Round string

const (
	Preflop Round = "Preflop"
	Flop    Round = "Flop"
	Turn    Round = "Turn"
	River   Round = "River"
)

// Action is a player action.
type Action string

const (
	Fold  Action = "Fold"
	Check Action = "Check"
	Call  Action = "Call"
	Bet   Action = "Bet"
	AllIn Action = "All In"
)

// RoundAgent accepts the four round names.
func RoundAgent() customs.Agent[Round] { return agents.Enum(Preflop, Flop, Turn, River) }

// ActionAgent accepts the five action names.
func ActionAgent() customs.Agent[Action] { return agents.Enum(Fold, Check, Call, Bet, AllIn) }

// BoardNeedsCardsAgent describes which board cards the backend needs:
// start is the first index, end is one past the last.
func BoardNeedsCardsAgent() customs.Agent[map[string]any] {
	return agents.Object(agents.Shape{
		"start": agents.Number(),
		"end":   agents.Number(),
	})
}

// ActionInterfaceAgent is an action together with its size in chips.
func ActionInterfaceAgent() customs.Agent[map[string]any] {
	return agents.Object(agents.Shape{
		"action": ActionAgent(),
		"size":   agents.Number(),
	})
}

// GameStateAgent mirrors the backend's PigeonState. The backend sends
// snake_case keys; the stamped map uses camelCase.
func GameStateAgent() customs.Agent[map[string]any] {
	return agents.Unsnake(agents.Object(agents.Shape{
		"players":         agents.Number(),
		"bigBlind":        agents.Number(),
		"smallBlind":      agents.Number(),
		"ante":            agents.Number(),
		"bigBlindAnte":    agents.Bool(),
		"blindBeforeAnte": agents.Bool(),
		"rake":            agents.Number(),
		"rakeCap":         agents.Number(),
		"noFlopNoDrop":    agents.Bool(),
		"button":          agents.Number(),
		"inProgress":      agents.Bool(),
		"round":           RoundAgent(),
		"actingPlayer":    agents.Number(),
		"folded":          agents.Array(agents.Bool()),
		"playersLeft":     agents.Number(),
		"playersAllIn":    agents.Number(),
		"pot":             agents.Number(),
		"bets":            agents.Array(agents.Number()),
		"stack":           agents.Array(agents.Number()),
		"minRaise":        agents.Number(),
		"neededToCall":    agents.Number(),
		"hands":           HandsAgent(),
		"board":           BoardCardsAgent(),
		"fishbaitSeat":    agents.Number(),
		"playerNeedsHand": agents.Nullable(agents.Number()),
		"boardNeedsCards": agents.Nullable(BoardNeedsCardsAgent()),
		"canMuck":         agents.Bool(),
		"playerNames":     agents.Array(agents.String()),
		"knownCards":      agents.Array(agents.Bool()),
		"lastAction":      agents.Array(agents.Nullable(ActionInterfaceAgent())),
		"knownBoard":      agents.Array(agents.Bool()),
	}))
}
