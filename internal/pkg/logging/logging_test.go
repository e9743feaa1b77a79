package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"havenpos/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(raw), raw)
	}
}

func TestNew_JSONFormatFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Config{Level: "warn", Format: "json"})

	logger.Info("order created", "order_id", "a")
	logger.Warn("order overdue", "order_id", "b")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "order overdue", rec["msg"])
	assert.Equal(t, "b", rec["order_id"])
}

func TestNew_TextFormatByDefault(t *testing.T) {
	var buf bytes.Buffer
	logging.New(&buf, logging.Config{}).Info("ready", "component", "http")

	assert.Contains(t, buf.String(), "msg=ready")
	assert.Contains(t, buf.String(), "component=http")
}
