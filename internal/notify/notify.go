// Package notify carries one-shot user notifications out of the sync
// layer. Stores emit a notice on mutation success or failure; the UI (or
// CLI) decides how to render it. The default implementation logs.
package notify

import "log/slog"

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notifier receives transient user-facing messages.
type Notifier interface {
	Notify(kind Kind, title string, detail string)
}

// LogNotifier renders notices through slog.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Notify(kind Kind, title string, detail string) {
	if n.Logger == nil {
		return
	}
	args := []any{"title", title}
	if detail != "" {
		args = append(args, "detail", detail)
	}
	if kind == Error {
		n.Logger.Error("notice", args...)
		return
	}
	n.Logger.Info("notice", args...)
}

// Discard drops every notice. Handy default so stores never nil-check.
type Discard struct{}

func (Discard) Notify(Kind, string, string) {}
