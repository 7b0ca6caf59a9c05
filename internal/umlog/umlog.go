// Package umlog is an optional run-trace logger. The machine's
// correctness never depends on it; it exists purely so a caller that
// wants visibility into a run (instruction counts, faults) has somewhere
// structured to send that, instead of ad hoc fmt.Fprintf calls scattered
// through the core. The handler is a small slog.Handler with fixed
// timestamp/level/message columns and no external sink.
package umlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type handler struct {
	out io.Writer
	mu  *sync.Mutex
	lvl slog.Leveler
}

// New builds a slog.Logger that writes one line per record to w, in the
// form "<time> <LEVEL>: <message> key=value ...". Pass nil for w to
// silence output entirely while keeping the same call sites live.
func New(w io.Writer, lvl slog.Leveler) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	if lvl == nil {
		lvl = slog.LevelInfo
	}
	return slog.New(&handler{out: w, mu: &sync.Mutex{}, lvl: lvl})
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := fmt.Sprintf("%s %s: %s", r.Time.Format("15:04:05.000"), r.Level, r.Message)
	r.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Attributes bound ahead of time are rare for this emulator's needs
	// (one logger per run, attached at construction); a deeper
	// implementation isn't exercised by anything in this repo.
	return h
}

func (h *handler) WithGroup(name string) slog.Handler {
	return h
}
