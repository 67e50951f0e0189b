package app

import (
	"bytes"
	"log/slog"

	"fixgl/hal"
)

// lineWriter feeds slog output to the HAL line logger, one record per line.
type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.l.WriteLineBytes(bytes.TrimRight(p, "\r\n"))
	return len(p), nil
}

func newLogger(h hal.HAL, level slog.Level) *slog.Logger {
	l := h.Logger()
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(lineWriter{l: l}, &slog.HandlerOptions{Level: level}))
}
