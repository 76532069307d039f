package configslog

import (
	"os"

	"go.uber.org/zap"
)

// Log is the structured logger, SLog its sugared counterpart. Both are set by
// InitLogger before anything else runs.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger builds the process-wide loggers. APP_ENV=production switches to
// the JSON production config; everything else gets the development console
// encoder.
func InitLogger() {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries; call it via defer from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
