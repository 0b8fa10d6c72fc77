package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"eventsync/internal/domain"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Upsert inserts or updates a category keyed by its WordPress ID. The parent
// relationship is not written here: a same-batch child may reference a parent
// that does not exist yet, so the orchestrator resolves parents in a second
// pass through SetParent.
func (s *CategoryStore) Upsert(ctx context.Context, category *domain.Category) (int64, bool, error) {
	query := `
		INSERT INTO categories (
			name, slug, description, sync_external_id, sync_last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
		ON CONFLICT (sync_external_id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			description = EXCLUDED.description,
			sync_last_synced_at = EXCLUDED.sync_last_synced_at,
			updated_at = now()
		RETURNING id, (xmax = 0) AS created`

	var (
		id      int64
		created bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		category.Name,
		category.Slug,
		category.Description,
		category.Sync.ExternalID,
		category.Sync.LastSyncedAt,
	).Scan(&id, &created)
	if err != nil {
		return 0, false, err
	}

	return id, created, nil
}

// SetParent updates only the parent relationship. A nil parentID clears it.
func (s *CategoryStore) SetParent(ctx context.Context, id int64, parentID *int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE categories SET parent_id = $2, updated_at = now() WHERE id = $1",
		id, parentID,
	)
	return err
}
