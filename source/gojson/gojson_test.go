package gojson_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fishbait/customs"
	a "github.com/fishbait/customs/agents"
	"github.com/fishbait/customs/source/gojson"
)

func TestDriver_DecodesNestedDocument(t *testing.T) {
	d := gojson.Driver()
	if d.Name() != "go-json" {
		t.Fatalf("unexpected driver name %q", d.Name())
	}
	obj := a.Object(a.Shape{
		"names": a.Array(a.String()),
		"needs": a.Nullable(a.Object(a.Shape{"start": a.Number()})),
		"ok":    a.Bool(),
	})
	src := d.NewReader(strings.NewReader(`{"names":["a","b"],"needs":{"start":3},"ok":false}`))
	v, err := customs.DecodeFrom(context.Background(), obj, src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v["names"].([]string)[1] != "b" || v["ok"] != false {
		t.Fatalf("unexpected stamp %v", v)
	}
}

func TestDriver_DuplicateKeyPath(t *testing.T) {
	opt := customs.ParseOpt{Strictness: customs.Strictness{OnDuplicateKey: customs.Error}}
	_, err := customs.DecodeFrom(context.Background(), a.Array(a.Object(a.Shape{})),
		gojson.Driver().NewBytes([]byte(`[{},{"k":1,"k":2}]`)), opt)
	iss, ok := customs.AsIssues(err)
	if !ok || iss[0].Path != "/1/k" {
		t.Fatalf("expected duplicate at /1/k, got %v", err)
	}
}
