// internal/app/bootstrap/logger.go
package bootstrap

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewLogger builds the console logger for a CLI run and tags every line with
// a fresh run id, so repeated invocations over the same inputs can be told
// apart in captured output. It also installs the logger globally for
// packages that log via zap.L().
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	zap.ReplaceGlobals(logger)
	return logger, nil
}
