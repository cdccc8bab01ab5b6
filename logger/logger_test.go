package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupAndFromContext(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	_, err := Setup(&buf, "info")
	require.NoError(t, err)

	ctx := WithTraceID(context.Background(), "trace-123")
	FromContext(ctx).Info("hello", "k", "v")
	FromContext(ctx).Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected, got %q", buf.String())
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "trace-123", entry["trace_id"])
	assert.Equal(t, "v", entry["k"])
}

func TestTraceIDMissing(t *testing.T) {
	assert.Equal(t, "", TraceID(context.Background()))
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
