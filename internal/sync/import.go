package sync

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"eventsync/internal/domain"
	"eventsync/internal/media"
	"eventsync/internal/wordpress"
)

// ImportData is the merged content of every file in the imports directory.
type ImportData struct {
	Files      []string
	Events     []wordpress.Event
	Venues     []wordpress.Venue
	Categories []wordpress.Category
}

// Import runs the bulk path: venues first (dedicated list plus venues
// embedded in events, collapsed by external ID), categories in two passes
// (upsert, then parent linkage once every category exists), organizers
// embedded in events, then the events themselves. Store failures on the
// batch passes abort the run; a per-event upsert failure only skips that
// event. The media cache spans the whole run.
func (s *Service) Import(ctx context.Context, data *ImportData) (*domain.ImportStats, error) {
	startTime := time.Now()
	now := startTime.UTC()
	cache := media.Cache{}
	stats := &domain.ImportStats{Files: data.Files}

	s.logger.Info("starting import",
		"files", len(data.Files),
		"events", len(data.Events),
		"venues", len(data.Venues),
		"categories", len(data.Categories),
	)

	venueByExternalID, err := s.importVenues(ctx, data, now, stats)
	if err != nil {
		return stats, err
	}

	categoryByExternalID, err := s.importCategories(ctx, data, now, stats)
	if err != nil {
		return stats, err
	}

	organizerByExternalID, err := s.importOrganizers(ctx, data, now, stats)
	if err != nil {
		return stats, err
	}

	for i := range data.Events {
		event := &data.Events[i]
		s.importEvent(ctx, event, importRefs{
			venues:     venueByExternalID,
			categories: categoryByExternalID,
			organizers: organizerByExternalID,
		}, cache, now, stats)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("import complete",
		"venues_created", stats.VenuesCreated,
		"venues_updated", stats.VenuesUpdated,
		"categories_created", stats.CategoriesCreated,
		"categories_updated", stats.CategoriesUpdated,
		"organizers_created", stats.OrganizersCreated,
		"organizers_updated", stats.OrganizersUpdated,
		"events_created", stats.EventsCreated,
		"events_updated", stats.EventsUpdated,
		"events_skipped", stats.EventsSkipped,
		"media_created", stats.MediaCreated,
		"media_reused", stats.MediaReused,
		"duration", stats.Duration,
	)

	return stats, nil
}

type importRefs struct {
	venues     map[string]int64
	categories map[string]int64
	organizers map[string]int64
}

// importVenues collapses the dedicated venue list and every venue embedded
// in an event, keyed by external ID so duplicates upsert once. Later
// occurrences win, first occurrence fixes the order.
func (s *Service) importVenues(ctx context.Context, data *ImportData, now time.Time, stats *domain.ImportStats) (map[string]int64, error) {
	var order []int64
	records := make(map[int64]wordpress.Venue)
	add := func(v wordpress.Venue) {
		if v.ID == 0 {
			return
		}
		if _, ok := records[v.ID]; !ok {
			order = append(order, v.ID)
		}
		records[v.ID] = v
	}

	for _, venue := range data.Venues {
		add(venue)
	}
	for i := range data.Events {
		if v := data.Events[i].Venue; v != nil {
			add(*v)
		}
	}

	byExternalID := make(map[string]int64, len(order))
	for _, wpID := range order {
		venue := records[wpID]
		id, created, err := s.upsertVenue(ctx, &venue, now)
		if err != nil {
			return nil, fmt.Errorf("upsert venue %d: %w", wpID, err)
		}
		byExternalID[strconv.FormatInt(wpID, 10)] = id
		if created {
			stats.VenuesCreated++
		} else {
			stats.VenuesUpdated++
		}
	}

	return byExternalID, nil
}

// importCategories collapses dedicated and embedded categories, upserts them
// without parent linkage, then resolves parents in a second pass. A child in
// the same batch may reference a parent that did not exist during pass one;
// after pass one every batch category has an internal ID, so pass two can
// link (or clear) parents deterministically.
func (s *Service) importCategories(ctx context.Context, data *ImportData, now time.Time, stats *domain.ImportStats) (map[string]int64, error) {
	var order []int64
	records := make(map[int64]wordpress.Category)
	add := func(c wordpress.Category) {
		if c.ID == 0 {
			return
		}
		if _, ok := records[c.ID]; !ok {
			order = append(order, c.ID)
		}
		records[c.ID] = c
	}

	for _, category := range data.Categories {
		add(category)
	}
	for i := range data.Events {
		for _, category := range data.Events[i].Categories {
			add(category)
		}
	}

	byExternalID := make(map[string]int64, len(order))
	for _, wpID := range order {
		category := records[wpID]
		id, created, err := s.upsertCategory(ctx, &category, now)
		if err != nil {
			return nil, fmt.Errorf("upsert category %d: %w", wpID, err)
		}
		byExternalID[strconv.FormatInt(wpID, 10)] = id
		if created {
			stats.CategoriesCreated++
		} else {
			stats.CategoriesUpdated++
		}
	}

	for _, wpID := range order {
		category := records[wpID]
		id, ok := byExternalID[strconv.FormatInt(wpID, 10)]
		if !ok {
			continue
		}

		var parentID *int64
		if category.Parent != 0 {
			if parent, ok := byExternalID[strconv.FormatInt(category.Parent, 10)]; ok {
				parentID = &parent
			}
		}
		if err := s.categories.SetParent(ctx, id, parentID); err != nil {
			return nil, fmt.Errorf("set parent for category %d: %w", wpID, err)
		}
	}

	return byExternalID, nil
}

// importOrganizers collapses organizers embedded in events; exports carry no
// dedicated organizer list.
func (s *Service) importOrganizers(ctx context.Context, data *ImportData, now time.Time, stats *domain.ImportStats) (map[string]int64, error) {
	var order []int64
	records := make(map[int64]wordpress.Organizer)

	for i := range data.Events {
		for _, organizer := range data.Events[i].Organizers {
			if organizer.ID == 0 {
				continue
			}
			if _, ok := records[organizer.ID]; !ok {
				order = append(order, organizer.ID)
			}
			records[organizer.ID] = organizer
		}
	}

	byExternalID := make(map[string]int64, len(order))
	for _, wpID := range order {
		organizer := records[wpID]
		id, created, err := s.upsertOrganizer(ctx, &organizer, now)
		if err != nil {
			return nil, fmt.Errorf("upsert organizer %d: %w", wpID, err)
		}
		byExternalID[strconv.FormatInt(wpID, 10)] = id
		if created {
			stats.OrganizersCreated++
		} else {
			stats.OrganizersUpdated++
		}
	}

	return byExternalID, nil
}

// importEvent resolves relationship IDs through the batch maps, acquires
// media, and upserts one event. Failures are logged and counted as skipped;
// the run continues.
func (s *Service) importEvent(ctx context.Context, event *wordpress.Event, refs importRefs, cache media.Cache, now time.Time, stats *domain.ImportStats) {
	externalID := strconv.FormatInt(event.ID, 10)

	var venueID *int64
	if event.Venue != nil && event.Venue.ID != 0 {
		if id, ok := refs.venues[strconv.FormatInt(event.Venue.ID, 10)]; ok {
			venueID = &id
		}
	}

	var categoryIDs []int64
	for _, category := range event.Categories {
		if id, ok := refs.categories[strconv.FormatInt(category.ID, 10)]; ok {
			categoryIDs = append(categoryIDs, id)
		}
	}

	var organizerIDs []int64
	for _, organizer := range event.Organizers {
		if id, ok := refs.organizers[strconv.FormatInt(organizer.ID, 10)]; ok {
			organizerIDs = append(organizerIDs, id)
		}
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
		case result != nil:
			featuredImageID = &result.ID
			if result.Created {
				stats.MediaCreated++
			} else {
				stats.MediaReused++
			}
		}
	}

	_, action, err := s.upsertEvent(ctx, event, eventRefs{
		venueID:         venueID,
		categoryIDs:     categoryIDs,
		organizerIDs:    organizerIDs,
		featuredImageID: featuredImageID,
	}, now)
	if err != nil {
		s.logger.Warn("skipping event",
			"wp_event_id", externalID,
			"error", err,
		)
		stats.EventsSkipped++
		return
	}

	if action == domain.ActionCreated {
		stats.EventsCreated++
	} else {
		stats.EventsUpdated++
	}
}
