// Package logging builds the slog logger shared by the command binaries.
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// New returns a text logger writing to w at level, tagged with the program
// name and a fresh run_id. It also installs the logger as the slog default.
func New(w io.Writer, level slog.Level, program string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler).With(
		"program", program,
		"run_id", uuid.NewString(),
	)
	slog.SetDefault(logger)
	return logger
}
