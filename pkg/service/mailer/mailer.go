package mailer

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
)

// DefaultDelay approximates the latency of a real mail relay
const DefaultDelay = 500 * time.Millisecond

// Simulated is an EmailGateway that logs instead of delivering. It waits the
// configured delay before reporting success so callers exercise the same
// asynchronous path a real relay would impose.
type Simulated struct {
	delay time.Duration
}

var _ interfaces.EmailGateway = &Simulated{}

type Option func(*Simulated)

func WithDelay(delay time.Duration) Option {
	return func(m *Simulated) {
		m.delay = delay
	}
}

func NewSimulated(opts ...Option) *Simulated {
	m := &Simulated{
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Simulated) Send(ctx context.Context, recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return goerr.New("no recipients")
	}

	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "mail send cancelled")
	}

	logging.From(ctx).Info("simulated mail delivered",
		"recipients", len(recipients),
		"subject", subject,
		"bytes", len(body))

	return nil
}
