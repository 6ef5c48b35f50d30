package testutil

import (
	"io"

	"github.com/dtroode/rewards-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error", "text")
}
