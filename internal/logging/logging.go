// Package logging builds the zap logger shared by all commands.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns a console logger writing to stderr at the given level
// (debug, info, warn or error). Levels are colored when stderr is a
// terminal.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return NewWithSink(lvl, zapcore.Lock(os.Stderr), term.IsTerminal(int(os.Stderr.Fd()))), nil
}

// NewWithSink builds the logger on an arbitrary sink.
func NewWithSink(lvl zapcore.Level, sink zapcore.WriteSyncer, color bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), sink, zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("textflux-site")
}
