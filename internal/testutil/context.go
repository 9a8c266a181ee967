package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/vk/blockform/internal/ctxlog"
)

// NewContext returns a context carrying a debug-level logger that writes into
// the returned buffer. Set BLOCKFORM_TEST_LOGS=true to dump the log after the
// test.
func NewContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if os.Getenv("BLOCKFORM_TEST_LOGS") == "true" {
		t.Cleanup(func() {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		})
	}
	return ctxlog.WithLogger(context.Background(), logger), buf
}
