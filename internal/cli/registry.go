package cli

import (
	"context"
	"sort"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/fishbait"
)

// schemaEntry is a named agent the CLI can check payloads against.
type schemaEntry struct {
	summary   string
	inspector customs.Inspector
	decode    func(ctx context.Context, src customs.Source, opt customs.ParseOpt) (any, error)
}

func entry[T any](summary string, a customs.Agent[T]) schemaEntry {
	return schemaEntry{
		summary:   summary,
		inspector: a,
		decode: func(ctx context.Context, src customs.Source, opt customs.ParseOpt) (any, error) {
			return customs.DecodeFrom(ctx, a, src, opt)
		},
	}
}

var schemas = map[string]schemaEntry{
	"gameState":       entry("full game state returned by every endpoint", fishbait.GameStateTypedAgent()),
	"apiError":        entry("error body of a failed request", fishbait.APIErrorAgent()),
	"board":           entry("board cards as ISO ids", fishbait.BoardCardsAgent()),
	"hands":           entry("player hands as ISO ids", fishbait.HandsAgent()),
	"boardNeedsCards": entry("range of board cards the client must set", fishbait.BoardNeedsCardsAgent()),
	"actionInterface": entry("one available action with its size", fishbait.ActionInterfaceAgent()),
}

func schemaNames() []string {
	names := make([]string, 0, len(schemas))
	for n := range schemas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
