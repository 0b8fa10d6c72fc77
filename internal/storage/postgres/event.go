package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"eventsync/internal/domain"
)

type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

// Upsert inserts or updates an event keyed by its WordPress ID. Category and
// organizer links live in join tables and are written separately via
// ReplaceCategories/ReplaceOrganizers, normally inside the same transaction.
func (s *EventStore) Upsert(ctx context.Context, event *domain.Event) (int64, bool, error) {
	query := `
		INSERT INTO events (
			title, slug, is_virtual, virtual_url, start_date_time, end_date_time,
			is_all_day, timezone, venue_id, website, featured_image_id,
			status, featured, sync_source, sync_external_id, sync_last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		ON CONFLICT (sync_external_id) DO UPDATE SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			is_virtual = EXCLUDED.is_virtual,
			virtual_url = EXCLUDED.virtual_url,
			start_date_time = EXCLUDED.start_date_time,
			end_date_time = EXCLUDED.end_date_time,
			is_all_day = EXCLUDED.is_all_day,
			timezone = EXCLUDED.timezone,
			venue_id = EXCLUDED.venue_id,
			website = EXCLUDED.website,
			featured_image_id = EXCLUDED.featured_image_id,
			status = EXCLUDED.status,
			featured = EXCLUDED.featured,
			sync_source = EXCLUDED.sync_source,
			sync_last_synced_at = EXCLUDED.sync_last_synced_at,
			updated_at = now()
		RETURNING id, (xmax = 0) AS created`

	var (
		id      int64
		created bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		event.Title,
		event.Slug,
		event.IsVirtual,
		event.VirtualURL,
		event.StartDateTime,
		event.EndDateTime,
		event.IsAllDay,
		event.Timezone,
		event.VenueID,
		event.Website,
		event.FeaturedImageID,
		event.Status,
		event.Featured,
		event.Sync.Source,
		event.Sync.ExternalID,
		event.Sync.LastSyncedAt,
	).Scan(&id, &created)
	if err != nil {
		return 0, false, err
	}

	return id, created, nil
}

// ReplaceCategories rewrites the event's category links to exactly the given
// set.
func (s *EventStore) ReplaceCategories(ctx context.Context, eventID int64, categoryIDs []int64) error {
	return s.replaceLinks(ctx, "event_categories", "category_id", eventID, categoryIDs)
}

// ReplaceOrganizers rewrites the event's organizer links to exactly the
// given set.
func (s *EventStore) ReplaceOrganizers(ctx context.Context, eventID int64, organizerIDs []int64) error {
	return s.replaceLinks(ctx, "event_organizers", "organizer_id", eventID, organizerIDs)
}

func (s *EventStore) replaceLinks(ctx context.Context, table, column string, eventID int64, ids []int64) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE event_id = $1",
		eventID,
	)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (event_id, ")
	sb.WriteString(column)
	sb.WriteString(") VALUES ")
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, eventID)

	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		args = append(args, id)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = exec.ExecContext(ctx, sb.String(), args...)
	return err
}
