package notify

import (
	"context"

	"github.com/paydeck/transactions-console/pkg/logger"
)

// Notifier receives the success/failure signals raised by screen
// operations. Screens decide the message class; implementations decide
// how it is rendered.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// logNotifier renders notifications as structured log events.
type logNotifier struct{}

func NewLogNotifier() *logNotifier {
	return &logNotifier{}
}

func (n *logNotifier) Success(ctx context.Context, message string) {
	logger.FromContext(ctx).Info("notification", "kind", "success", "message", message)
}

func (n *logNotifier) Error(ctx context.Context, message string) {
	logger.FromContext(ctx).Warn("notification", "kind", "error", "message", message)
}
