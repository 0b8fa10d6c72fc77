//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"eventsync/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_collections.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM event_categories")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM event_organizers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM events")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM media")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM organizers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM categories")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM venues")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func ptr[T any](v T) *T { return &v }

func testVenue(externalID string) *domain.Venue {
	return &domain.Venue{
		Name: "The Marquee",
		Slug: "the-marquee",
		Address: domain.Address{
			Street:  ptr("2037 Gottingen St"),
			City:    ptr("Halifax"),
			State:   ptr("Nova Scotia"),
			Country: "Canada",
		},
		Sync: domain.SyncMarker{
			ExternalID:   externalID,
			LastSyncedAt: time.Now().UTC().Truncate(time.Microsecond),
		},
	}
}

func (s *PostgresIntegrationSuite) TestVenueStore_UpsertIsIdempotent() {
	store := NewVenueStore(s.db)

	venue := testVenue("7")
	id1, created1, err := store.Upsert(s.ctx, venue)
	s.Require().NoError(err)
	s.True(created1)

	venue.Name = "The Marquee Ballroom"
	id2, created2, err := store.Upsert(s.ctx, venue)
	s.Require().NoError(err)
	s.False(created2)
	s.Equal(id1, id2)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT count(*) FROM venues"))
	s.Equal(1, count)

	var name string
	s.Require().NoError(s.db.GetContext(s.ctx, &name, "SELECT name FROM venues WHERE id = $1", id2))
	s.Equal("The Marquee Ballroom", name)
}

func (s *PostgresIntegrationSuite) TestCategoryStore_SetParent() {
	store := NewCategoryStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	parentID, _, err := store.Upsert(s.ctx, &domain.Category{
		Name: "Music",
		Slug: "music",
		Sync: domain.SyncMarker{ExternalID: "1", LastSyncedAt: now},
	})
	s.Require().NoError(err)

	childID, _, err := store.Upsert(s.ctx, &domain.Category{
		Name: "Jazz",
		Slug: "jazz",
		Sync: domain.SyncMarker{ExternalID: "2", LastSyncedAt: now},
	})
	s.Require().NoError(err)

	s.Require().NoError(store.SetParent(s.ctx, childID, &parentID))

	var got *int64
	s.Require().NoError(s.db.GetContext(s.ctx, &got, "SELECT parent_id FROM categories WHERE id = $1", childID))
	s.Require().NotNil(got)
	s.Equal(parentID, *got)

	s.Require().NoError(store.SetParent(s.ctx, childID, nil))
	s.Require().NoError(s.db.GetContext(s.ctx, &got, "SELECT parent_id FROM categories WHERE id = $1", childID))
	s.Nil(got)
}

func (s *PostgresIntegrationSuite) TestMediaStore_DedupBySourceURL() {
	store := NewMediaStore(s.db)

	asset := &domain.Media{
		Alt:      "Jazz Night image",
		Credit:   "https://wp.example.com/poster.jpg",
		Tags:     []string{"wordpress-import"},
		Filename: "wp-event-100.jpg",
		MimeType: "image/jpeg",
		Data:     []byte("jpeg-bytes"),
	}

	id1, err := store.Create(s.ctx, asset)
	s.Require().NoError(err)

	// Same credit again: the conflict arm loses the insert and re-selects
	// the winner.
	id2, err := store.Create(s.ctx, asset)
	s.Require().NoError(err)
	s.Equal(id1, id2)

	foundID, found, err := store.FindBySourceURL(s.ctx, asset.Credit)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(id1, foundID)

	_, found, err = store.FindBySourceURL(s.ctx, "https://wp.example.com/other.jpg")
	s.Require().NoError(err)
	s.False(found)
}

func (s *PostgresIntegrationSuite) TestEventStore_UpsertAndLinks() {
	venues := NewVenueStore(s.db)
	categories := NewCategoryStore(s.db)
	events := NewEventStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	venueID, _, err := venues.Upsert(s.ctx, testVenue("7"))
	s.Require().NoError(err)

	catA, _, err := categories.Upsert(s.ctx, &domain.Category{
		Name: "Music", Slug: "music",
		Sync: domain.SyncMarker{ExternalID: "1", LastSyncedAt: now},
	})
	s.Require().NoError(err)
	catB, _, err := categories.Upsert(s.ctx, &domain.Category{
		Name: "Nightlife", Slug: "nightlife",
		Sync: domain.SyncMarker{ExternalID: "2", LastSyncedAt: now},
	})
	s.Require().NoError(err)

	event := &domain.Event{
		Title:         "Jazz Night",
		Slug:          "jazz-night",
		StartDateTime: now.Add(24 * time.Hour),
		Timezone:      "America/Halifax",
		VenueID:       &venueID,
		Status:        domain.StatusPublished,
		Sync: domain.SyncMarker{
			Source:       domain.SourceWordPress,
			ExternalID:   "100",
			LastSyncedAt: now,
		},
	}

	eventID, created, err := events.Upsert(s.ctx, event)
	s.Require().NoError(err)
	s.True(created)

	s.Require().NoError(events.ReplaceCategories(s.ctx, eventID, []int64{catA, catB}))

	var linked []int64
	s.Require().NoError(s.db.SelectContext(s.ctx, &linked,
		"SELECT category_id FROM event_categories WHERE event_id = $1 ORDER BY category_id", eventID))
	s.Equal([]int64{catA, catB}, linked)

	// Re-sync drops one category; the link set must shrink to match.
	event.Status = domain.StatusCancelled
	id2, created2, err := events.Upsert(s.ctx, event)
	s.Require().NoError(err)
	s.False(created2)
	s.Equal(eventID, id2)

	s.Require().NoError(events.ReplaceCategories(s.ctx, eventID, []int64{catB}))
	var remaining []int64
	s.Require().NoError(s.db.SelectContext(s.ctx, &remaining,
		"SELECT category_id FROM event_categories WHERE event_id = $1", eventID))
	s.Equal([]int64{catB}, remaining)

	var status string
	s.Require().NoError(s.db.GetContext(s.ctx, &status, "SELECT status FROM events WHERE id = $1", eventID))
	s.Equal("cancelled", status)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_RollsBack() {
	tm := NewTransactionManager(s.db)
	venues := NewVenueStore(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		_, _, err := venues.Upsert(txCtx, testVenue("9"))
		s.Require().NoError(err)
		return context.Canceled
	})
	s.Error(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT count(*) FROM venues"))
	s.Equal(0, count)
}
