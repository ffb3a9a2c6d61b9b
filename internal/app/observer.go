package app

import "log/slog"

// logObserver narrates batch progress through the run's logger.
type logObserver struct {
	logger *slog.Logger
}

func (o *logObserver) Retrying(label string, err error, attempt int) {
	o.logger.Warn("Retrying action.", "action", label, "attempt", attempt, "error", err)
}

func (o *logObserver) Succeeded(label string) {
	o.logger.Info("✅ Action finished.", "action", label)
}

func (o *logObserver) Failed(label string, err error) {
	o.logger.Error("Action failed.", "action", label, "error", err)
}
