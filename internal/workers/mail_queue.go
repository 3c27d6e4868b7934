package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/crrd/internal/adapter"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

const (
	DefaultMailQueueSize = 256

	mailSendTimeout  = 30 * time.Second
	mailDrainTimeout = 5 * time.Second
)

var ErrMailQueueFull = errors.New("mail queue is full")

type queuedMail struct {
	ctx   context.Context
	email models.Email
}

// MailQueue is an [adapter.Mailer] whose Send only enqueues. Delivery through
// the wrapped mailer happens in Run, so request handlers never wait on SMTP.
type MailQueue struct {
	next  adapter.Mailer
	queue chan queuedMail

	sendTimeout  time.Duration
	drainTimeout time.Duration

	logger *logger.Logger
}

// NewMailQueue wraps next with a buffer of size mails. A non-positive size
// selects DefaultMailQueueSize.
func NewMailQueue(next adapter.Mailer, size int, logger *logger.Logger) *MailQueue {
	if size <= 0 {
		size = DefaultMailQueueSize
	}
	return &MailQueue{
		next:         next,
		queue:        make(chan queuedMail, size),
		sendTimeout:  mailSendTimeout,
		drainTimeout: mailDrainTimeout,
		logger:       logger,
	}
}

// Send never blocks. The mail keeps the values of ctx (request-scoped
// logger included) but not its cancellation.
func (q *MailQueue) Send(ctx context.Context, email models.Email) error {
	select {
	case q.queue <- queuedMail{ctx: context.WithoutCancel(ctx), email: email}:
		return nil
	default:
		return ErrMailQueueFull
	}
}

// Run delivers queued mails until ctx is cancelled, then flushes what is
// left for at most the drain timeout.
func (q *MailQueue) Run(ctx context.Context) {
	q.logger.Info().Str("func", "*MailQueue.Run").Int("capacity", cap(q.queue)).Msg("mail queue started")
	for {
		select {
		case <-ctx.Done():
			q.drain()
			q.logger.Info().Str("func", "*MailQueue.Run").Msg("mail queue stopped")
			return
		case m := <-q.queue:
			q.deliver(m, q.sendTimeout)
		}
	}
}

func (q *MailQueue) drain() {
	deadline := time.Now().Add(q.drainTimeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			if left := len(q.queue); left > 0 {
				q.logger.Warn().Str("func", "*MailQueue.drain").Int("dropped", left).Msg("mail queue not flushed in time")
			}
			return
		}

		select {
		case m := <-q.queue:
			q.deliver(m, min(remaining, q.sendTimeout))
		default:
			return
		}
	}
}

func (q *MailQueue) deliver(m queuedMail, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(m.ctx, timeout)
	defer cancel()

	if err := q.next.Send(ctx, m.email); err != nil {
		logger.FromContext(m.ctx).Err(err).
			Str("func", "*MailQueue.deliver").
			Str("subject", m.email.Subject).
			Msg("error delivering queued mail")
	}
}
