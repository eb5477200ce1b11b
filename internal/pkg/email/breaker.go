package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

type breakerTransport struct {
	next Transport
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTransport wraps next in a circuit breaker.
func NewBreakerTransport(name string, next Transport) Transport {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate is at least 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("Email circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &breakerTransport{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *breakerTransport) Send(ctx context.Context, msg Message) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Send(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) {
		slog.Warn("Circuit breaker is open, skipping email send", "to", msg.To, "subject", msg.Subject)
	}
	return err
}
