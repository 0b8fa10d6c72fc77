package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eventsync/internal/domain"
)

// Cache memoizes source URL → media ID for one sync run. The orchestrator
// owns it and passes it into every call; it is never shared across runs.
type Cache map[string]int64

// Store is the slice of media persistence the acquirer needs.
type Store interface {
	FindBySourceURL(ctx context.Context, sourceURL string) (int64, bool, error)
	Create(ctx context.Context, media *domain.Media) (int64, error)
}

// Request identifies the image to acquire and the event it belongs to. The
// event context only feeds alt text and the stored filename.
type Request struct {
	SourceURL  string
	EventID    int64
	EventTitle string
}

// Result reports the resolved media ID and whether a new asset was stored.
type Result struct {
	ID      int64
	Created bool
}

// Config holds acquirer limits.
type Config struct {
	Timeout  time.Duration
	MaxBytes int64
}

// Acquirer resolves a source URL to an internal media asset: call-scoped
// cache first, then the store by source URL, then a network fetch that
// stores a new asset. Fetch failures degrade to "no image" rather than
// failing the event.
type Acquirer struct {
	store      Store
	httpClient *http.Client
	maxBytes   int64
	logger     *slog.Logger
}

func NewAcquirer(store Store, cfg Config, logger *slog.Logger) *Acquirer {
	return &Acquirer{
		store: store,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxBytes: cfg.MaxBytes,
		logger:   logger.With("component", "media"),
	}
}

// GetOrCreate returns the media ID for req.SourceURL. A nil result with a
// nil error means the image could not be fetched and the event should be
// saved without one. Store errors are returned as-is.
func (a *Acquirer) GetOrCreate(ctx context.Context, req Request, cache Cache) (*Result, error) {
	if id, ok := cache[req.SourceURL]; ok {
		return &Result{ID: id, Created: false}, nil
	}

	id, found, err := a.store.FindBySourceURL(ctx, req.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("find media by source url: %w", err)
	}
	if found {
		cache[req.SourceURL] = id
		return &Result{ID: id, Created: false}, nil
	}

	mimeType, data, ok := a.fetch(ctx, req)
	if !ok {
		return nil, nil
	}

	alt := fmt.Sprintf("Event %d image", req.EventID)
	if req.EventTitle != "" {
		alt = req.EventTitle + " image"
	}

	extension := extensionFromURL(req.SourceURL, mimeType)

	createdID, err := a.store.Create(ctx, &domain.Media{
		Alt:      alt,
		Credit:   req.SourceURL,
		Tags:     []string{"wordpress-import"},
		Filename: fmt.Sprintf("wp-event-%d%s", req.EventID, extension),
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}

	cache[req.SourceURL] = createdID
	return &Result{ID: createdID, Created: true}, nil
}

// fetch downloads the image bytes. Every failure mode here is non-fatal:
// log a warning and report !ok.
func (a *Acquirer) fetch(ctx context.Context, req Request) (string, []byte, bool) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.SourceURL, nil)
	if err != nil {
		a.logger.Warn("invalid image url",
			"event_id", req.EventID,
			"url", req.SourceURL,
			"error", err,
		)
		return "", nil, false
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		a.logger.Warn("unable to fetch image",
			"event_id", req.EventID,
			"url", req.SourceURL,
			"error", err,
		)
		return "", nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Warn("image request failed",
			"event_id", req.EventID,
			"url", req.SourceURL,
			"status", resp.StatusCode,
		)
		return "", nil, false
	}

	// Read one byte past the cap so an oversized payload is detectable
	// instead of being stored truncated.
	data, err := io.ReadAll(io.LimitReader(resp.Body, a.maxBytes+1))
	if err != nil {
		a.logger.Warn("unable to read image body",
			"event_id", req.EventID,
			"url", req.SourceURL,
			"error", err,
		)
		return "", nil, false
	}
	if int64(len(data)) > a.maxBytes {
		a.logger.Warn("image exceeds size limit",
			"event_id", req.EventID,
			"url", req.SourceURL,
			"max_bytes", a.maxBytes,
		)
		return "", nil, false
	}
	if len(data) == 0 {
		a.logger.Warn("empty image payload",
			"event_id", req.EventID,
			"url", req.SourceURL,
		)
		return "", nil, false
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return mimeType, data, true
}
