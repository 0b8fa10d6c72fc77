package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"eventsync/internal/domain"
)

type MediaStore struct {
	db *sqlx.DB
}

func NewMediaStore(db *sqlx.DB) *MediaStore {
	return &MediaStore{db: db}
}

// FindBySourceURL looks up an existing asset whose credit field equals the
// source URL. Returns found=false when there is none.
func (s *MediaStore) FindBySourceURL(ctx context.Context, sourceURL string) (int64, bool, error) {
	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"SELECT id FROM media WHERE credit = $1 LIMIT 1",
		sourceURL,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// Create stores a new asset. The unique index on credit keeps dedup-by-URL
// atomic: on a concurrent insert of the same URL the conflict arm returns no
// row and the winner's ID is re-selected.
func (s *MediaStore) Create(ctx context.Context, media *domain.Media) (int64, error) {
	query := `
		INSERT INTO media (alt, caption, credit, tags, filename, mime_type, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (credit) DO NOTHING
		RETURNING id`

	exec := GetExecutor(ctx, s.db)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		media.Alt,
		media.Caption,
		media.Credit,
		pq.Array(media.Tags),
		media.Filename,
		media.MimeType,
		media.Data,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM media WHERE credit = $1",
			media.Credit,
		).Scan(&id)
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}
