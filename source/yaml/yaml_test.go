package yaml_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fishbait/customs"
	a "github.com/fishbait/customs/agents"
	yamlsrc "github.com/fishbait/customs/source/yaml"
)

func TestYAML_DecodesLikeJSON(t *testing.T) {
	doc := `
board_needs_cards:
  start: 3
  end: 5
player_names: [alice, bob]
player_needs_hand: null
can_muck: true
rake: 0.05
`
	state := a.Unsnake(a.Object(a.Shape{
		"boardNeedsCards": a.Object(a.Shape{"start": a.Number(), "end": a.Number()}),
		"playerNames":     a.Array(a.String()),
		"playerNeedsHand": a.Nullable(a.Number()),
		"canMuck":         a.Bool(),
		"rake":            a.Number(),
	}))
	v, err := customs.DecodeFrom(context.Background(), state, yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v["rake"] != 0.05 || v["canMuck"] != true || v["playerNames"].([]string)[1] != "bob" {
		t.Fatalf("unexpected stamp %v", v)
	}
	if p := v["playerNeedsHand"].(*float64); p != nil {
		t.Fatalf("null should stay null, got %v", *p)
	}
}

func TestYAML_DuplicateKeysFollowPolicy(t *testing.T) {
	doc := "a: 1\na: 2\n"
	opt := customs.ParseOpt{Strictness: customs.Strictness{OnDuplicateKey: customs.Error}}
	_, err := customs.DecodeFrom(context.Background(), a.Object(a.Shape{}), yamlsrc.NewReader(strings.NewReader(doc)), opt)
	iss, ok := customs.AsIssues(err)
	if !ok || iss[0].Code != customs.CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("expected duplicate_key at /a, got %v", err)
	}
}

func TestYAML_Errors(t *testing.T) {
	for _, doc := range []string{"", "a: [1, 2", "? [a, b]\n: 1\n", "x: .nan\n"} {
		_, err := customs.DecodeFrom(context.Background(), a.Object(a.Shape{}), yamlsrc.NewBytes([]byte(doc)))
		iss, ok := customs.AsIssues(err)
		if !ok || iss[0].Code != customs.CodeParseError {
			t.Fatalf("%q: expected parse_error, got %v", doc, err)
		}
	}
}

func TestYAML_Aliases(t *testing.T) {
	doc := "base: &b [1, 2]\ncopy: *b\n"
	v, err := customs.DecodeFrom(context.Background(), a.Object(a.Shape{"copy": a.Array(a.Number())}), yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := v["copy"].([]float64); len(got) != 2 || got[1] != 2 {
		t.Fatalf("alias not expanded: %v", v["copy"])
	}
}
