// Package contact accepts contact form submissions and hands them to the
// configured store and notifier.
package contact

import (
	"context"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

// Acceptor takes a completed contact submission and reports whether it was accepted.
type Acceptor interface {
	Accept(ctx context.Context, sub types.ContactSubmission) (bool, error)
}

// AcceptorFunc adapts a function to the Acceptor interface.
type AcceptorFunc func(ctx context.Context, sub types.ContactSubmission) (bool, error)

// Accept calls f.
func (f AcceptorFunc) Accept(ctx context.Context, sub types.ContactSubmission) (bool, error) {
	return f(ctx, sub)
}

// Store persists accepted submissions.
type Store interface {
	SaveSubmission(ctx context.Context, sub types.StoredSubmission) error
}

// Notifier tells the site owner about a new submission.
type Notifier interface {
	Notify(ctx context.Context, sub types.StoredSubmission) error
}

type clientIPKey struct{}

// WithClientIP returns a context carrying the submitter's address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the address stored by WithClientIP, or "".
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}
