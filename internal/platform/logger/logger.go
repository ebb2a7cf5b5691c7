package logger

import "go.uber.org/zap"

// New builds the process logger: production encoding unless the environment
// asks for development output.
func New(env string) *zap.Logger {
	var z *zap.Logger
	if env == "prod" {
		z, _ = zap.NewProduction()
	} else {
		z, _ = zap.NewDevelopment()
	}
	return z
}
