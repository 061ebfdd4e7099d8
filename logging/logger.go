// Package logging builds the zap logger shared by the commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON logger at level writing to paths, stderr when none are
// given. A development logger uses the colored console encoder and also
// records stack traces.
func New(level string, development bool, paths ...string) (*zap.Logger, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		paths = []string{"stderr"}
	}
	var (
		encoding = "json"
		encoder  = zap.NewProductionEncoderConfig()
	)
	encoder.TimeKey = "timestamp"
	encoder.MessageKey = "message"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	if development {
		encoding = "console"
		encoder = zap.NewDevelopmentEncoderConfig()
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(l),
		Development:       development,
		Encoding:          encoding,
		EncoderConfig:     encoder,
		OutputPaths:       paths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !development,
	}.Build()
}
