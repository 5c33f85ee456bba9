// Package logger builds the console logger for the Stellium CLI.
// Diagnostics go to stderr so command output on stdout stays clean
// for piping; the --verbose flag lowers the level to debug.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at the given level. Pass a
// zap.AtomicLevel to adjust the level after flags are parsed.
func New(level zapcore.LevelEnabler, w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core)
}
