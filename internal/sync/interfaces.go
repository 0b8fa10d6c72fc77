package sync

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"eventsync/internal/domain"
	"eventsync/internal/media"
)

// Store interfaces are satisfied by internal/storage/postgres. Every Upsert
// returns the internal ID and whether the row was created (vs updated).

type VenueStore interface {
	Upsert(ctx context.Context, venue *domain.Venue) (int64, bool, error)
}

type CategoryStore interface {
	Upsert(ctx context.Context, category *domain.Category) (int64, bool, error)
	SetParent(ctx context.Context, id int64, parentID *int64) error
}

type OrganizerStore interface {
	Upsert(ctx context.Context, organizer *domain.Organizer) (int64, bool, error)
}

type EventStore interface {
	Upsert(ctx context.Context, event *domain.Event) (int64, bool, error)
	ReplaceCategories(ctx context.Context, eventID int64, categoryIDs []int64) error
	ReplaceOrganizers(ctx context.Context, eventID int64, organizerIDs []int64) error
}

// MediaAcquirer resolves a source URL to a stored asset. A nil result with a
// nil error means the image was unreachable and the event proceeds without
// one.
type MediaAcquirer interface {
	GetOrCreate(ctx context.Context, req media.Request, cache media.Cache) (*media.Result, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher notifies downstream consumers that an event changed. Optional;
// a nil publisher disables notifications.
type Publisher interface {
	PublishEventSynced(ctx context.Context, event *domain.Event, created bool) error
	Close() error
}
