package events

import (
	"context"
	"time"

	"github.com/abhisek/focusloop/internal/logging"
	"github.com/sirupsen/logrus"
)

// Relay periodically drains an outbox into a publisher. Failed batches are
// requeued and retried on the next tick.
type Relay struct {
	outbox   *Outbox
	pub      Publisher
	interval time.Duration
	log      logrus.FieldLogger
}

// NewRelay creates a relay. interval defaults to one second.
func NewRelay(outbox *Outbox, pub Publisher, interval time.Duration, log logrus.FieldLogger) *Relay {
	if interval <= 0 {
		interval = time.Second
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Relay{outbox: outbox, pub: pub, interval: interval, log: log}
}

// Run publishes until ctx is cancelled, then makes one final attempt with a
// short grace period.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			r.Flush(final)
			cancel()
			return nil
		case <-ticker.C:
			r.Flush(ctx)
		}
	}
}

// Flush publishes everything pending once. It returns the number of events
// published.
func (r *Relay) Flush(ctx context.Context) int {
	batch := r.outbox.Drain()
	if len(batch) == 0 {
		return 0
	}
	if err := r.pub.Publish(ctx, batch); err != nil {
		r.log.WithError(err).WithField("events", len(batch)).Warn("publish domain events failed, requeued")
		r.outbox.Requeue(batch)
		return 0
	}
	return len(batch)
}

// LogPublisher writes events to a logger. It stands in for a broker when
// none is configured.
type LogPublisher struct {
	log logrus.FieldLogger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(log logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, batch []Event) error {
	for _, e := range batch {
		p.log.WithFields(logrus.Fields{
			"kind":       e.Kind,
			"student_id": e.StudentID,
			"session_id": e.SessionID,
			"subtopic":   e.Subtopic,
		}).Info(e.Reason)
	}
	return nil
}
