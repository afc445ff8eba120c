package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

// Service is the default Acceptor. A submission is accepted once it is stored
// (if a store is configured) and the owner notified (if a notifier is configured).
type Service struct {
	store    Store
	notifier Notifier
	hasher   *IPHasher
	logger   *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

var _ Acceptor = (*Service)(nil)

// NewService creates a Service. Any of store, notifier and hasher may be nil.
func NewService(store Store, notifier Notifier, hasher *IPHasher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		hasher:   hasher,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Accept validates sub, then stores and announces it.
func (s *Service) Accept(ctx context.Context, sub types.ContactSubmission) (bool, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	if err := sub.Validate(); err != nil {
		return false, fmt.Errorf("invalid contact submission: %w", err)
	}

	stored := types.StoredSubmission{
		ID:         s.newID(),
		Name:       sub.Name,
		Email:      sub.Email,
		Message:    sub.Message,
		ReceivedAt: s.now().UTC(),
	}
	if s.hasher != nil {
		stored.IPHash = s.hasher.Hash(ClientIP(ctx))
	}

	if s.store != nil {
		if err := s.store.SaveSubmission(ctx, stored); err != nil {
			s.logger.ErrorContext(ctx, "failed to store contact submission", "id", stored.ID, "error", err)
			return false, fmt.Errorf("failed to store submission %s: %w", stored.ID, err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, stored); err != nil {
			s.logger.ErrorContext(ctx, "failed to send contact notification", "id", stored.ID, "error", err)
			return false, fmt.Errorf("failed to notify about submission %s: %w", stored.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "contact submission accepted", "id", stored.ID)
	return true, nil
}
