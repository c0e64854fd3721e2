package cli

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := SetupLogger("error", "cli")
	if logger.Component() != "cli" {
		t.Errorf("component = %q, want cli", logger.Component())
	}
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be filtered at error level")
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled")
	}
}
