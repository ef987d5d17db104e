package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestLogger_WithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With("component", "board")

	log.Info("job added", "job_id", "id_1")
	log.Debug("details")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "job added", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "board", ctx["component"])
	assert.Equal(t, "id_1", ctx["job_id"])
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("ignored", "k", "v")
	assert.NoError(t, log.Sync())
}
