package config

import "go.uber.org/zap"

// NewLogger builds the process-wide zap logger. The caller owns Sync.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
