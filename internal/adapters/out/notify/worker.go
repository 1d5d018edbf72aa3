// Package notify implements the fire-and-forget notifier on top of an
// intent sink. Callers never block on notification delivery: intents go
// through a bounded buffer drained by a single background worker, and the
// buffer overflowing drops the intent rather than stalling a command.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shipping/internal/core/ports"
)

// DefaultBufferSize is the intent buffer capacity used when none is given.
const DefaultBufferSize = 256

// publishTimeout bounds a single sink call so a slow broker cannot wedge
// the worker.
const publishTimeout = 5 * time.Second

// Sink is where the worker hands intents off to, typically the message
// broker publisher.
type Sink interface {
	PublishEmail(ctx context.Context, intent ports.EmailIntent) error
	PublishSMS(ctx context.Context, intent ports.SMSIntent) error
}

type queuedIntent struct {
	email *ports.EmailIntent
	sms   *ports.SMSIntent
}

// Worker implements ports.Notifier. Start must be called before intents
// are accepted; Stop drains the buffer and waits for the worker to finish.
type Worker struct {
	sink   Sink
	logger *slog.Logger

	intents chan queuedIntent
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWorker creates a notification worker. A non-positive bufferSize falls
// back to DefaultBufferSize.
func NewWorker(sink Sink, logger *slog.Logger, bufferSize int) *Worker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Worker{
		sink:    sink,
		logger:  logger.With("component", "notify_worker"),
		intents: make(chan queuedIntent, bufferSize),
	}
}

// Start launches the background worker goroutine.
func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for intent := range w.intents {
			w.deliver(intent)
		}
	}()
}

// Stop closes the intake, drains remaining intents and waits for the
// worker to exit. No intents are accepted afterwards.
func (w *Worker) Stop() {
	w.once.Do(func() {
		close(w.intents)
	})
	w.wg.Wait()
}

// SendEmail queues an email intent. Never blocks; the intent is dropped
// with a warning when the buffer is full.
func (w *Worker) SendEmail(intent ports.EmailIntent) {
	select {
	case w.intents <- queuedIntent{email: &intent}:
	default:
		w.logger.Warn("intent buffer full, dropping email intent", "subject", intent.Subject)
	}
}

// SendSMS queues an SMS intent. Never blocks; the intent is dropped with a
// warning when the buffer is full.
func (w *Worker) SendSMS(intent ports.SMSIntent) {
	select {
	case w.intents <- queuedIntent{sms: &intent}:
	default:
		w.logger.Warn("intent buffer full, dropping sms intent")
	}
}

func (w *Worker) deliver(intent queuedIntent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	switch {
	case intent.email != nil:
		if err := w.sink.PublishEmail(ctx, *intent.email); err != nil {
			w.logger.Error("failed to publish email intent", "subject", intent.email.Subject, "error", err)
		}
	case intent.sms != nil:
		if err := w.sink.PublishSMS(ctx, *intent.sms); err != nil {
			w.logger.Error("failed to publish sms intent", "error", err)
		}
	}
}
