package notifications

import (
	"context"

	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// Kind classifies a customer-facing notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a single message destined for the customer.
type Notification struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Sink receives checkout outcome notifications. Implementations must not
// fail the calling flow; delivery is best effort.
type Sink interface {
	Publish(ctx context.Context, n Notification)
}

// LogSink writes notifications to the structured log. It stands in for a
// real delivery channel (email, push) which is out of scope here.
type LogSink struct {
	logg *logger.Logger
}

// NewLogSink builds a log-backed sink.
func NewLogSink(logg *logger.Logger) *LogSink {
	return &LogSink{logg: logg}
}

func (s *LogSink) Publish(ctx context.Context, n Notification) {
	if s == nil || s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{
		"notification_kind":  string(n.Kind),
		"notification_title": n.Title,
	})
	s.logg.Info(ctx, n.Detail)
}
