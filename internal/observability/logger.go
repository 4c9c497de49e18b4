package observability

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"gridcourier/internal/config"
)

const ansiReset = "\x1b[0m"

var ansi = map[string]string{
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
}

var (
	current  atomic.Pointer[zap.Logger]
	initOnce sync.Once
)

// InitializeLogger installs the process logger on stderr, leaving stdout to
// rendered grids and tables. Only the first call has an effect.
func InitializeLogger(cfg config.LoggerConfig) {
	initialize(cfg, zapcore.Lock(os.Stderr))
}

func initialize(cfg config.LoggerConfig, console zapcore.WriteSyncer) {
	initOnce.Do(func() {
		level := zap.NewAtomicLevelAt(zap.InfoLevel)
		_ = level.UnmarshalText([]byte(cfg.Level))

		tee := []zapcore.Core{zapcore.NewCore(newEncoder(cfg.Format, cfg.Colors), console, level)}
		if cfg.LogFile != "" {
			rotating := &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
			tee = append(tee, zapcore.NewCore(newEncoder("json", cfg.Colors), zapcore.AddSync(rotating), level))
		}

		opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
		if cfg.AddSource {
			opts = append(opts, zap.AddCaller())
		}
		l := zap.New(zapcore.NewTee(tee...), opts...).Named(cfg.ServiceName)
		current.Store(l)
		zap.ReplaceGlobals(l)
	})
}

func newEncoder(format string, colors config.ColorConfig) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if format != "console" {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		name := strings.ToUpper(lvl.String())
		if code, ok := ansi[levelColor(colors, lvl)]; ok {
			name = code + name + ansiReset
		}
		enc.AppendString(name)
	}
	ec.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(name + ".")
	}
	return zapcore.NewConsoleEncoder(ec)
}

func levelColor(colors config.ColorConfig, lvl zapcore.Level) string {
	switch {
	case lvl <= zapcore.DebugLevel:
		return colors.Debug
	case lvl == zapcore.InfoLevel:
		return colors.Info
	case lvl == zapcore.WarnLevel:
		return colors.Warn
	case lvl == zapcore.ErrorLevel:
		return colors.Error
	default:
		return colors.Fatal
	}
}

// GetLogger returns the installed logger, or a development logger named
// "fallback" before InitializeLogger runs.
func GetLogger() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("fallback")
}

// Sync flushes buffered entries. Terminals reject fsync, so its error is
// dropped.
func Sync() {
	if l := current.Load(); l != nil {
		_ = l.Sync()
	}
}

func ResetForTest() {
	current.Store(nil)
	initOnce = sync.Once{}
}
