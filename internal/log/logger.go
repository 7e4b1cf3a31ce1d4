// Package log builds the file-backed session logger. The game writes to
// the XDG state directory so stdout stays clean for the report tool.
package log

import (
	"fmt"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger appending to
// $XDG_STATE_HOME/vocasnake/vocasnake.log.
func New(debug bool) (*zap.Logger, error) {
	path, err := xdg.StateFile("vocasnake/vocasnake.log")
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
