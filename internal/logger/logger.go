package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger. Development environments get the
// human-readable console encoder, everything else logs JSON.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch environment {
	case "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
