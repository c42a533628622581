// Package notifications keeps a small per-user feed of transient status
// messages in Redis. Entries expire on their own; a dismiss empties the
// feed explicitly.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

const (
	// feedTTL bounds how long an untouched feed survives.
	feedTTL = 24 * time.Hour
	// maxEntries caps the feed so a chatty session can't grow it unbounded.
	maxEntries = 50
)

// Level tags a notification for client styling.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient status message.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Service defines the behavior needed by the notification controller.
type Service interface {
	Enqueue(ctx context.Context, userID uuid.UUID, level Level, message string) error
	List(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	Dismiss(ctx context.Context, userID uuid.UUID) error
}

type feedStore interface {
	NotificationKey(userID string) string
	LPush(ctx context.Context, key string, values ...any) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type service struct {
	store feedStore
	logg  *logger.Logger
	now   func() time.Time
}

// NewService constructs a notification service on the Redis-backed store.
func NewService(store feedStore, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("feed store is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{store: store, logg: logg, now: time.Now}, nil
}

func (s *service) Enqueue(ctx context.Context, userID uuid.UUID, level Level, message string) error {
	if message == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}

	entry := Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to encode notification")
	}

	key := s.store.NotificationKey(userID.String())
	if err := s.store.LPush(ctx, key, string(payload)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to enqueue notification")
	}
	if err := s.store.LTrim(ctx, key, 0, maxEntries-1); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to trim notification feed")
	}
	if err := s.store.Expire(ctx, key, feedTTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to refresh feed ttl")
	}
	return nil
}

// List returns the feed newest first. Entries that fail to decode are
// skipped rather than poisoning the whole feed.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	key := s.store.NotificationKey(userID.String())
	raw, err := s.store.LRange(ctx, key, 0, -1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to read notification feed")
	}

	feed := make([]Notification, 0, len(raw))
	for _, item := range raw {
		var entry Notification
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "dropping undecodable notification entry")
			continue
		}
		feed = append(feed, entry)
	}
	return feed, nil
}

func (s *service) Dismiss(ctx context.Context, userID uuid.UUID) error {
	key := s.store.NotificationKey(userID.String())
	if err := s.store.Del(ctx, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to dismiss notifications")
	}
	return nil
}
