package fishbait

import (
	"bytes"
	"sort"

	j "github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

// Routes the client posts to or fetches from.
const (
	RouteNewSession = "new_session"
	RouteState      = "state"
	RouteApply      = "apply"
	RouteSetHand    = "set_hand"
	RouteSetBoard   = "set_board"
	RouteNewHand    = "new_hand"
	RouteReset      = "reset"
)

// ActionRequest is the body of an apply request.
type ActionRequest struct {
	Action Action  `json:"action"`
	Size   float64 `json:"size"`
}

// SetHandRequest reveals a hand by ISO ids; nil entries are unknown cards.
type SetHandRequest struct {
	Hand []*int `json:"hand"`
}

// SetBoardRequest reveals board cards by ISO ids.
type SetBoardRequest struct {
	Board []*int `json:"board"`
}

// ResetRequest starts a new game.
type ResetRequest struct {
	Stack        []float64 `json:"stack"`
	Button       int       `json:"button"`
	FishbaitSeat int       `json:"fishbaitSeat"`
	PlayerNames  []string  `json:"playerNames"`
	BigBlind     float64   `json:"bigBlind"`
	SmallBlind   float64   `json:"smallBlind"`
}

// EncodeBody encodes a request body as JSON with its top-level keys in
// snake_case, which is what the backend reads. Nested keys are kept.
func EncodeBody(body any) ([]byte, error) {
	data, err := j.Marshal(body)
	if err != nil {
		return nil, err
	}
	var m map[string]j.RawMessage
	if err := j.Unmarshal(data, &m); err != nil || m == nil {
		// not an object: nothing to rename
		return data, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(strcase.ToSnake(k))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(m[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CardIDs converts cards to the ISO ids the backend expects; nil and unknown
// cards become nil.
func CardIDs(cards []*Card) []*int {
	out := make([]*int, len(cards))
	for i, c := range cards {
		if c == nil {
			continue
		}
		if id, ok := c.ISO(); ok {
			out[i] = &id
		}
	}
	return out
}
