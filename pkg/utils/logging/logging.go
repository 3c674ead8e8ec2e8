// Package logging builds the application logger
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// InitLogger creates a zap logger for the given environment: structured
// JSON in prod, human-readable development output everywhere else.
func InitLogger(env string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if env == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.With(zap.String("environment", env)), nil
}
