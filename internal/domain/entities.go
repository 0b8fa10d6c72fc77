package domain

import "time"

// Source records where an entity originated. Entities created through the
// admin surface default to manual; the sync pipeline stamps wordpress.
type Source string

const (
	SourceManual    Source = "manual"
	SourceWordPress Source = "wordpress"
)

// Status is the internal event lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
	StatusPostponed Status = "postponed"
)

// SyncMarker is the reconciliation metadata persisted on every entity that
// can originate from WordPress. ExternalID is the external system's own
// identifier and is unique per collection.
type SyncMarker struct {
	Source       Source    `db:"sync_source"`
	ExternalID   string    `db:"sync_external_id"`
	LastSyncedAt time.Time `db:"sync_last_synced_at"`
}

type Address struct {
	Street  *string `db:"street"`
	City    *string `db:"city"`
	State   *string `db:"state"`
	Zip     *string `db:"zip"`
	Country string  `db:"country"`
}

type Venue struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	Address   Address
	Longitude *float64 `db:"longitude"`
	Latitude  *float64 `db:"latitude"`
	Website   *string  `db:"website"`
	Phone     *string  `db:"phone"`
	Sync      SyncMarker
}

type Category struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Description *string `db:"description"`
	ParentID    *int64  `db:"parent_id"`
	Sync        SyncMarker
}

type Organizer struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	Slug    string  `db:"slug"`
	Email   *string `db:"email"`
	Website *string `db:"website"`
	Sync    SyncMarker
}

type Event struct {
	ID              int64      `db:"id"`
	Title           string     `db:"title"`
	Slug            string     `db:"slug"`
	IsVirtual       bool       `db:"is_virtual"`
	VirtualURL      *string    `db:"virtual_url"`
	StartDateTime   time.Time  `db:"start_date_time"`
	EndDateTime     *time.Time `db:"end_date_time"`
	IsAllDay        bool       `db:"is_all_day"`
	Timezone        string     `db:"timezone"`
	VenueID         *int64     `db:"venue_id"`
	Website         *string    `db:"website"`
	FeaturedImageID *int64     `db:"featured_image_id"`
	Status          Status     `db:"status"`
	Featured        bool       `db:"featured"`
	CategoryIDs     []int64
	OrganizerIDs    []int64
	Sync            SyncMarker
}

// Media is a stored asset. Credit holds the original source URL when the
// asset came from a sync, which doubles as the dedup key.
type Media struct {
	ID       int64    `db:"id"`
	Alt      string   `db:"alt"`
	Caption  *string  `db:"caption"`
	Credit   string   `db:"credit"`
	Tags     []string `db:"tags"`
	Filename string   `db:"filename"`
	MimeType string   `db:"mime_type"`
	Data     []byte   `db:"data"`
}
