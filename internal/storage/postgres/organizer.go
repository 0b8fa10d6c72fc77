package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"eventsync/internal/domain"
)

type OrganizerStore struct {
	db *sqlx.DB
}

func NewOrganizerStore(db *sqlx.DB) *OrganizerStore {
	return &OrganizerStore{db: db}
}

func (s *OrganizerStore) Upsert(ctx context.Context, organizer *domain.Organizer) (int64, bool, error) {
	query := `
		INSERT INTO organizers (
			name, slug, email, website, sync_external_id, sync_last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (sync_external_id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			sync_last_synced_at = EXCLUDED.sync_last_synced_at,
			updated_at = now()
		RETURNING id, (xmax = 0) AS created`

	var (
		id      int64
		created bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		organizer.Name,
		organizer.Slug,
		organizer.Email,
		organizer.Website,
		organizer.Sync.ExternalID,
		organizer.Sync.LastSyncedAt,
	).Scan(&id, &created)
	if err != nil {
		return 0, false, err
	}

	return id, created, nil
}
