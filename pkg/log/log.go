package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLog builds the process logger. It writes to stderr, keeping stdout free for reports.
func InitLog(lvl zap.AtomicLevel) *zap.Logger {
	return NewLogger(lvl, zapcore.Lock(os.Stderr))
}

// NewLogger builds a console logger writing entries at or above lvl to out.
func NewLogger(lvl zap.AtomicLevel, out zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.LevelKey = "severity"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), out, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.DPanicLevel), zap.ErrorOutput(out))
}

// ParseLevel parses lvl, falling back to fallback when lvl is empty or unknown.
func ParseLevel(lvl string, fallback zapcore.Level) zap.AtomicLevel {
	if lvl == "" {
		return zap.NewAtomicLevelAt(fallback)
	}
	level, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		return zap.NewAtomicLevelAt(fallback)
	}
	return level
}
