package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"eventsync/internal/domain"
)

type VenueStore struct {
	db *sqlx.DB
}

func NewVenueStore(db *sqlx.DB) *VenueStore {
	return &VenueStore{db: db}
}

// Upsert inserts or updates a venue keyed by its WordPress ID. The unique
// index on sync_external_id makes this atomic; xmax = 0 distinguishes an
// insert from a conflict update.
func (s *VenueStore) Upsert(ctx context.Context, venue *domain.Venue) (int64, bool, error) {
	query := `
		INSERT INTO venues (
			name, slug, street, city, state, zip, country,
			longitude, latitude, website, phone,
			sync_external_id, sync_last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (sync_external_id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			street = EXCLUDED.street,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			country = EXCLUDED.country,
			longitude = EXCLUDED.longitude,
			latitude = EXCLUDED.latitude,
			website = EXCLUDED.website,
			phone = EXCLUDED.phone,
			sync_last_synced_at = EXCLUDED.sync_last_synced_at,
			updated_at = now()
		RETURNING id, (xmax = 0) AS created`

	var (
		id      int64
		created bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		venue.Name,
		venue.Slug,
		venue.Address.Street,
		venue.Address.City,
		venue.Address.State,
		venue.Address.Zip,
		venue.Address.Country,
		venue.Longitude,
		venue.Latitude,
		venue.Website,
		venue.Phone,
		venue.Sync.ExternalID,
		venue.Sync.LastSyncedAt,
	).Scan(&id, &created)
	if err != nil {
		return 0, false, err
	}

	return id, created, nil
}
