package sync

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"eventsync/internal/domain"
	"eventsync/internal/media"
	"eventsync/internal/wordpress"
)

// Service reconciles WordPress records into the internal collections. Both
// entry points (SyncEvent for the webhook, Import for bulk files) share the
// same upsert primitives and differ only in batching and failure policy.
type Service struct {
	venues     VenueStore
	categories CategoryStore
	organizers OrganizerStore
	events     EventStore
	media      MediaAcquirer
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
}

func NewService(
	venues VenueStore,
	categories CategoryStore,
	organizers OrganizerStore,
	events EventStore,
	mediaAcquirer MediaAcquirer,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		venues:     venues,
		categories: categories,
		organizers: organizers,
		events:     events,
		media:      mediaAcquirer,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "sync"),
	}
}

// SyncEvent runs the webhook pipeline for one event: venue, categories,
// organizers, media, then the event itself. Every stage except the last
// tolerates failure: the error is logged, recorded in the report, and the
// pipeline continues with whatever IDs did resolve. An event-upsert failure
// is fatal for the call; the partial report is still returned.
func (s *Service) SyncEvent(ctx context.Context, event *wordpress.Event) (*domain.Report, error) {
	now := time.Now().UTC()
	cache := media.Cache{}
	report := domain.NewReport()

	var venueID *int64
	if event.Venue != nil && event.Venue.ID != 0 {
		id, _, err := s.upsertVenue(ctx, event.Venue, now)
		if err != nil {
			s.logger.Warn("venue upsert failed",
				"wp_venue_id", event.Venue.ID,
				"error", err,
			)
			report.Venue = &domain.VenueResult{ID: event.Venue.ID, Error: err.Error()}
		} else {
			venueID = &id
			report.Venue = &domain.VenueResult{ID: id}
		}
	}

	var categoryIDs []int64
	for i := range event.Categories {
		category := &event.Categories[i]
		id, _, err := s.upsertCategory(ctx, category, now)
		if err != nil {
			s.logger.Warn("category upsert failed",
				"wp_category_id", category.ID,
				"error", err,
			)
			report.Categories = append(report.Categories, domain.CategoryResult{WPID: category.ID, Error: err.Error()})
			continue
		}
		categoryIDs = append(categoryIDs, id)
		report.Categories = append(report.Categories, domain.CategoryResult{WPID: category.ID, ID: id})
	}

	var organizerIDs []int64
	for i := range event.Organizers {
		organizer := &event.Organizers[i]
		id, _, err := s.upsertOrganizer(ctx, organizer, now)
		if err != nil {
			s.logger.Warn("organizer upsert failed",
				"wp_organizer_id", organizer.ID,
				"error", err,
			)
			report.Organizers = append(report.Organizers, domain.OrganizerResult{WPID: organizer.ID, Error: err.Error()})
			continue
		}
		organizerIDs = append(organizerIDs, id)
		report.Organizers = append(report.Organizers, domain.OrganizerResult{WPID: organizer.ID, ID: id})
	}

	var featuredImageID *int64
	sourceURL := wordpress.ExtractImageURL(event.ImageURL)
	if sourceURL == "" {
		sourceURL = wordpress.ExtractImageURL(event.Image)
	}
	if sourceURL != "" {
		result, err := s.media.GetOrCreate(ctx, media.Request{
			SourceURL:  sourceURL,
			EventID:    event.ID,
			EventTitle: wordpress.CleanText(event.Title),
		}, cache)
		switch {
		case err != nil:
			s.logger.Warn("media acquisition failed",
				"wp_event_id", event.ID,
				"url", sourceURL,
				"error", err,
			)
			report.Media = &domain.MediaResult{Error: err.Error()}
		case result != nil:
			featuredImageID = &result.ID
			report.Media = &domain.MediaResult{ID: result.ID, Created: result.Created}
		}
	}

	id, action, err := s.upsertEvent(ctx, event, eventRefs{
		venueID:         venueID,
		categoryIDs:     categoryIDs,
		organizerIDs:    organizerIDs,
		featuredImageID: featuredImageID,
	}, now)
	if err != nil {
		s.logger.Error("event upsert failed",
			"wp_event_id", event.ID,
			"error", err,
		)
		return report, err
	}
	report.Event = &domain.EventResult{ID: id, Action: action}

	return report, nil
}

// eventRefs carries relationship IDs already resolved by the orchestrator.
// The event upserter never resolves external references itself.
type eventRefs struct {
	venueID         *int64
	categoryIDs     []int64
	organizerIDs    []int64
	featuredImageID *int64
}

func (s *Service) upsertVenue(ctx context.Context, wp *wordpress.Venue, now time.Time) (int64, bool, error) {
	externalID := strconv.FormatInt(wp.ID, 10)

	venue := &domain.Venue{
		Name: fallbackText(wordpress.CleanText(wp.Venue), "Venue "+externalID),
		Slug: fallbackText(wordpress.CleanText(wp.Slug), "venue-"+externalID),
		Address: domain.Address{
			Street:  optionalText(wordpress.CleanText(wp.Address)),
			City:    optionalText(wordpress.CleanText(wp.City)),
			State:   optionalText(firstCleanText(wp.Province, wp.StateProvince, wp.State)),
			Zip:     optionalText(wordpress.CleanText(wp.Zip)),
			Country: fallbackText(wordpress.CleanText(wp.Country), "Canada"),
		},
		Website: optionalText(wordpress.CleanText(wp.Website)),
		Phone:   optionalText(wordpress.CleanText(wp.Phone)),
		Sync: domain.SyncMarker{
			ExternalID:   externalID,
			LastSyncedAt: syncedAt(wp.Modified, now),
		},
	}

	// Longitude first; both coordinates or neither.
	if wp.GeoLng != nil && wp.GeoLat != nil {
		venue.Longitude = wp.GeoLng
		venue.Latitude = wp.GeoLat
	}

	return s.venues.Upsert(ctx, venue)
}

func (s *Service) upsertCategory(ctx context.Context, wp *wordpress.Category, now time.Time) (int64, bool, error) {
	externalID := strconv.FormatInt(wp.ID, 10)

	return s.categories.Upsert(ctx, &domain.Category{
		Name:        fallbackText(wordpress.CleanText(wp.Name), "Category "+externalID),
		Slug:        fallbackText(wordpress.CleanText(wp.Slug), "category-"+externalID),
		Description: optionalText(wordpress.CleanText(wp.Description)),
		Sync: domain.SyncMarker{
			ExternalID:   externalID,
			LastSyncedAt: now,
		},
	})
}

func (s *Service) upsertOrganizer(ctx context.Context, wp *wordpress.Organizer, now time.Time) (int64, bool, error) {
	externalID := strconv.FormatInt(wp.ID, 10)

	return s.organizers.Upsert(ctx, &domain.Organizer{
		Name:    fallbackText(wordpress.CleanText(wp.Organizer), "Organizer "+externalID),
		Slug:    fallbackText(wordpress.CleanText(wp.Slug), "organizer-"+externalID),
		Email:   optionalText(wordpress.CleanText(wp.Email)),
		Website: optionalText(wordpress.CleanText(wp.Website)),
		Sync: domain.SyncMarker{
			ExternalID:   externalID,
			LastSyncedAt: syncedAt(wp.Modified, now),
		},
	})
}

// upsertEvent is the only stage whose failure is fatal for the sync of this
// event. A missing or unparseable start_date never gets a placeholder.
func (s *Service) upsertEvent(ctx context.Context, wp *wordpress.Event, refs eventRefs, now time.Time) (int64, domain.Action, error) {
	externalID := strconv.FormatInt(wp.ID, 10)

	start, ok := wordpress.ParseDate(wp.StartDate)
	if !ok {
		return 0, "", fmt.Errorf("missing or invalid start_date for event %s", externalID)
	}

	event := &domain.Event{
		Title:           fallbackText(wordpress.CleanText(wp.Title), "Event "+externalID),
		Slug:            fallbackText(wordpress.CleanText(wp.Slug), "event-"+externalID),
		IsVirtual:       wp.IsVirtual,
		VirtualURL:      optionalText(wordpress.CleanText(wp.VirtualURL)),
		StartDateTime:   start,
		IsAllDay:        wp.AllDay,
		Timezone:        fallbackText(wordpress.CleanText(wp.Timezone), "America/Halifax"),
		VenueID:         refs.venueID,
		Website:         optionalText(wordpress.CleanText(wp.Website)),
		FeaturedImageID: refs.featuredImageID,
		CategoryIDs:     refs.categoryIDs,
		OrganizerIDs:    refs.organizerIDs,
		Status:          wordpress.NormalizeStatus(wp.Status),
		Featured:        wp.Featured,
		Sync: domain.SyncMarker{
			Source:       domain.SourceWordPress,
			ExternalID:   externalID,
			LastSyncedAt: syncedAt(wp.Modified, now),
		},
	}
	if end, ok := wordpress.ParseDate(wp.EndDate); ok {
		event.EndDateTime = &end
	}

	var (
		id      int64
		created bool
	)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		id, created, err = s.events.Upsert(txCtx, event)
		if err != nil {
			return fmt.Errorf("upsert event: %w", err)
		}
		if err := s.events.ReplaceCategories(txCtx, id, refs.categoryIDs); err != nil {
			return fmt.Errorf("link categories: %w", err)
		}
		if err := s.events.ReplaceOrganizers(txCtx, id, refs.organizerIDs); err != nil {
			return fmt.Errorf("link organizers: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, "", err
	}

	event.ID = id
	s.notify(ctx, event, created)

	action := domain.ActionUpdated
	if created {
		action = domain.ActionCreated
	}
	return id, action, nil
}

// notify publishes a change notification. Failures never affect the sync
// outcome.
func (s *Service) notify(ctx context.Context, event *domain.Event, created bool) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEventSynced(ctx, event, created); err != nil {
		s.logger.Warn("publish event notification failed",
			"event_id", event.ID,
			"error", err,
		)
	}
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fallbackText(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// firstCleanText returns the first value that survives CleanText.
func firstCleanText(values ...string) string {
	for _, v := range values {
		if cleaned := wordpress.CleanText(v); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// syncedAt prefers the record's own modification time over the run
// timestamp.
func syncedAt(modified string, now time.Time) time.Time {
	if t, ok := wordpress.ParseDate(modified); ok {
		return t
	}
	return now
}
