package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init sets up the global zap logger. Production environments get JSON
// output with sampling, everything else gets the human-readable console
// encoder.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
