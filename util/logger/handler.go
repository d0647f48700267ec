// Package logger provides the slog.Handler used by cmd/rum for
// diagnostic output. It writes to the io.Writer it is given; cmd/rum
// gives it stderr so it never interleaves with a running program's own
// Output-opcode byte stream on stdout.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a minimal text slog.Handler: "<time> <LEVEL>: <message>
// <attrs...>" on a single line. It is safe for concurrent use.
type Handler struct {
	out io.Writer
	mu  *sync.Mutex
	lvl slog.Leveler
}

// New returns a Handler writing to out, filtering below lvl. A nil
// lvl defaults to slog.LevelInfo.
func New(out io.Writer, lvl slog.Leveler) *Handler {
	if lvl == nil {
		lvl = slog.LevelInfo
	}
	return &Handler{out: out, mu: &sync.Mutex{}, lvl: lvl}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl.Level()
}

// WithAttrs implements slog.Handler. Attrs are not currently retained
// across calls since cmd/rum never builds attribute groups; this
// exists to satisfy the interface the way library code built against
// slog.Handler expects.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{
		r.Time.Format("2006/01/02 15:04:05"),
		r.Level.String() + ":",
		r.Message,
	}
	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			parts = append(parts, a.String())
			return true
		})
	}
	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(line))
	return err
}
