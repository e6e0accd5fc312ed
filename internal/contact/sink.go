package contact

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink receives the diagnostic record of each submission.
// Implementations must not block the caller for long and report their own failures.
type Sink interface {
	Record(ctx context.Context, sub Submission)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, sub Submission)

// Record implements Sink.
func (f SinkFunc) Record(ctx context.Context, sub Submission) { f(ctx, sub) }

// Discard drops every record.
var Discard Sink = SinkFunc(func(context.Context, Submission) {})

// LogSink writes each submission as a structured log record.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink returns a sink logging to logger. A nil logger discards.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Record implements Sink.
func (s *LogSink) Record(_ context.Context, sub Submission) {
	s.logger.Info("contact form submitted",
		zap.String("submission_id", uuid.NewString()),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("message", sub.Message),
	)
}

// MultiSink fans a record out to every sink in order. Nil entries are skipped.
type MultiSink []Sink

// Record implements Sink.
func (m MultiSink) Record(ctx context.Context, sub Submission) {
	for _, s := range m {
		if s != nil {
			s.Record(ctx, sub)
		}
	}
}
