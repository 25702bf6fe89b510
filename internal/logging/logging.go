package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rotor-lang/rotor/internal/config"
)

// New builds the logger of the rotor command. Verbose forces the debug level.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// diagnostics go to stdout, logs stay on stderr
	zapCfg.OutputPaths = []string{"stderr"}

	zl, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("constructing logger: %w", err)
	}
	return zl, nil
}
