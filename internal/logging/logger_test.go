package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("drops time and filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, false, "warn")
		log.Info("hidden")
		log.Warn("shown", "network", "goerli")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "network=goerli")
		assert.NotContains(t, out, "time=")
	})

	t.Run("debug flag overrides level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, true, "error")
		log.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/config/loader.go", shortPath("/home/dev/chainconf/internal/config/loader.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}
