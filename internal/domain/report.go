package domain

import "time"

// Action tells whether an upsert created a new entity or updated an
// existing one.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// VenueResult holds the internal venue ID on success, or the external venue
// ID plus the failure message when the venue stage failed.
type VenueResult struct {
	ID    int64  `json:"id"`
	Error string `json:"error,omitempty"`
}

type CategoryResult struct {
	WPID  int64  `json:"wpId"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

type OrganizerResult struct {
	WPID  int64  `json:"wpId"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

type MediaResult struct {
	ID      int64  `json:"id"`
	Created bool   `json:"created"`
	Error   string `json:"error,omitempty"`
}

type EventResult struct {
	ID     int64  `json:"id"`
	Action Action `json:"action"`
}

// Report aggregates per-stage outcomes for one synced event. It lives for a
// single sync call and is never persisted.
type Report struct {
	Venue      *VenueResult      `json:"venue,omitempty"`
	Categories []CategoryResult  `json:"categories"`
	Organizers []OrganizerResult `json:"organizers"`
	Media      *MediaResult      `json:"media,omitempty"`
	Event      *EventResult      `json:"event,omitempty"`
}

func NewReport() *Report {
	return &Report{
		Categories: []CategoryResult{},
		Organizers: []OrganizerResult{},
	}
}

// ImportStats holds aggregate counters for one bulk-import run.
type ImportStats struct {
	Files             []string
	VenuesCreated     int
	VenuesUpdated     int
	CategoriesCreated int
	CategoriesUpdated int
	OrganizersCreated int
	OrganizersUpdated int
	EventsCreated     int
	EventsUpdated     int
	EventsSkipped     int
	MediaCreated      int
	MediaReused       int
	Duration          time.Duration
}
