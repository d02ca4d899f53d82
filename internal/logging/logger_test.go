package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		l, err := New(level, "")
		require.NoError(t, err, level)
		require.NotNil(t, l)
	}

	l, err := New("debug", FormatJSON)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("warn", FormatConsole)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("loud", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = New("info", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestCategoryAndTimer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := For(zap.New(core), CategoryProducts)

	StartTimer(l, "summarize").Stop()

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "products", entries[0].LoggerName)
	assert.Equal(t, "summarize", entries[0].ContextMap()["operation"])
}
