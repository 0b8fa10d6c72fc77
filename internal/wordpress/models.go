package wordpress

import "encoding/json"

// Venue is a WordPress venue record as delivered by webhook or export file.
type Venue struct {
	ID            int64    `json:"id"`
	Venue         string   `json:"venue"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Province      string   `json:"province"`
	State         string   `json:"state"`
	StateProvince string   `json:"stateprovince"`
	Zip           string   `json:"zip"`
	GeoLat        *float64 `json:"geo_lat"`
	GeoLng        *float64 `json:"geo_lng"`
	Website       string   `json:"website"`
	Phone         string   `json:"phone"`
	Modified      string   `json:"modified"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Parent      int64  `json:"parent"`
}

type Organizer struct {
	ID        int64  `json:"id"`
	Organizer string `json:"organizer"`
	Slug      string `json:"slug"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Phone     string `json:"phone"`
	Modified  string `json:"modified"`
}

// Event is a WordPress event record. Image and ImageURL stay raw because the
// export pipeline ships them in several shapes (string, array, nested
// object); ExtractImageURL probes them.
type Event struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Status     string          `json:"status"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Timezone   string          `json:"timezone"`
	AllDay     bool            `json:"all_day"`
	Website    string          `json:"website"`
	Featured   bool            `json:"featured"`
	Image      json.RawMessage `json:"image,omitempty"`
	ImageURL   json.RawMessage `json:"imageUrl,omitempty"`
	IsVirtual  bool            `json:"is_virtual"`
	VirtualURL string          `json:"virtual_url"`
	Categories []Category      `json:"categories"`
	Organizers []Organizer     `json:"organizers"`
	Venue      *Venue          `json:"venue"`
	Modified   string          `json:"modified"`
}

// ImportFile is one JSON export file from the imports directory. Any of the
// three lists may be absent.
type ImportFile struct {
	Events     []Event    `json:"events"`
	Venues     []Venue    `json:"venues"`
	Categories []Category `json:"categories"`
}
