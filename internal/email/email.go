// Package email delivers digest notifications via a pluggable provider.
package email

import (
	"context"
	"log/slog"
)

// Provider defines the interface for email sending implementations.
type Provider interface {
	// Send sends one email with the given parameters.
	Send(ctx context.Context, to, subject, textBody string) error
}

// digestSubject is used for every digest email. Digests for the same thread
// land in the same conversation in most clients.
const digestSubject = "New posts in threads you follow"

// Sender adapts a Provider to the narrow send(address, body) contract the
// digest notifier consumes.
type Sender struct {
	provider Provider
	logger   *slog.Logger
}

// New creates a new digest email sender with the given provider.
func New(provider Provider, logger *slog.Logger) *Sender {
	return &Sender{
		provider: provider,
		logger:   logger,
	}
}

// Send dispatches one digest body to one recipient.
func (s *Sender) Send(ctx context.Context, address, body string) error {
	s.logger.Info("sending digest email",
		"to", address,
		"body_length", len(body))
	return s.provider.Send(ctx, address, digestSubject, body)
}
