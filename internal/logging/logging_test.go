package logging

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
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestInitializeJSON(t *testing.T) {
	previous := GetGlobalLogger()
	defer SetGlobalLogger(previous)

	var buf bytes.Buffer
	Initialize(&Config{Level: slog.LevelDebug, Format: "json", Output: &buf})

	Component("sdkadapter").Debug("calling operation", "operation", "GetJobRun")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "calling operation", record["msg"])
	assert.Equal(t, "sdkadapter", record["component"])
	assert.Equal(t, "GetJobRun", record["operation"])
}

func TestInitializeFiltersByLevel(t *testing.T) {
	previous := GetGlobalLogger()
	defer SetGlobalLogger(previous)

	var buf bytes.Buffer
	Initialize(&Config{Level: slog.LevelWarn, Format: "text", Output: &buf})

	GetGlobalLogger().Info("dropped")
	With("shape", "JobRun").Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "shape=JobRun")
	assert.False(t, GetGlobalLogger().Enabled(context.Background(), slog.LevelInfo))
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, nil)

	ctx := WithLogger(context.Background(), logger)
	ctx = WithComponent(ctx, "sdkadapter")
	ctx = WithShape(ctx, "StopWorkflowRunRequest")
	ctx = WithSource(ctx, "stop.yaml")

	FromContext(ctx).Info("done")
	assert.Contains(t, buf.String(), `"component":"sdkadapter"`)
	assert.Contains(t, buf.String(), `"shape":"StopWorkflowRunRequest"`)
	assert.Contains(t, buf.String(), `"source":"stop.yaml"`)
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, GetGlobalLogger(), FromContext(context.Background()))
}
