package cli_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/internal/cli"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, got: %s", want, b.String())
}

func TestApp_CheckWatch(t *testing.T) {
	t.Cleanup(customs.UseDefaultJSONDriver)
	path := writeFile(t, "board.json", "[0]")

	var stdout, stderr syncBuffer
	app := cli.New().WithOutput(&stdout, &stderr)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.ExecuteWithArgs(ctx, []string{"check", "board", path, "--watch"}) }()

	waitFor(t, &stdout, `"2s"`)
	if err := os.WriteFile(path, []byte("[52]"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	waitFor(t, &stderr, "payload rejected")
	if err := os.WriteFile(path, []byte("[51]"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	waitFor(t, &stdout, `"Ac"`)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch should end cleanly, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestApp_CheckWatchNeedsFile(t *testing.T) {
	_, _, err := run(t, "[0]", "check", "board", "--watch")
	if err == nil || !strings.Contains(err.Error(), "--watch needs a file") {
		t.Fatalf("want stdin rejection, got %v", err)
	}
}
