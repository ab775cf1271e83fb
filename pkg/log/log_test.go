package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLog(t *testing.T) {
	logger := InitLog(zap.NewAtomicLevelAt(zapcore.WarnLevel))
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(zap.NewAtomicLevelAt(zapcore.WarnLevel), zapcore.AddSync(buf))

	logger.Debug("computed audit plan", zap.Int("total_days", 51))
	logger.Warn("tuning file overrides defaults", zap.String("path", "tuning.yaml"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "computed audit plan")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "tuning file overrides defaults")
	assert.Contains(t, out, `"path": "tuning.yaml"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug", zapcore.WarnLevel).Level())
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("", zapcore.WarnLevel).Level())
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty", zapcore.InfoLevel).Level())
}
