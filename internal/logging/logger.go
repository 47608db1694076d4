package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logr logger backed by zap, writing to w at the given level.
// Commands pass their stderr so diagnostics never mix with answers.
func New(level string, w io.Writer) (logr.Logger, error) {
	lower := strings.ToLower(strings.TrimSpace(level))
	var zapLevel zapcore.Level
	development := false
	switch lower {
	case "debug":
		development = true
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return logr.Logger{}, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	var encoder zapcore.Encoder
	if development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	atomic := zap.NewAtomicLevelAt(zapLevel)
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), atomic)
	opts := []zap.Option{zap.AddCaller()}
	if development {
		opts = append(opts, zap.Development())
	}
	return zapr.NewLogger(zap.New(core, opts...)), nil
}
