package media

import (
	"net/url"
	"path"
	"strings"
)

// extensionFromMime maps a content type to a file extension. Anything not
// recognized defaults to .jpg, which is what WordPress serves most of the
// time anyway.
func extensionFromMime(mimeType string) string {
	if mimeType == "" {
		return ".jpg"
	}
	lower := strings.ToLower(mimeType)
	switch {
	case strings.Contains(lower, "png"):
		return ".png"
	case strings.Contains(lower, "webp"):
		return ".webp"
	case strings.Contains(lower, "gif"):
		return ".gif"
	case strings.Contains(lower, "svg"):
		return ".svg"
	case strings.Contains(lower, "avif"):
		return ".avif"
	default:
		return ".jpg"
	}
}

// extensionFromURL takes the extension from the URL path when it looks
// plausible (1-5 characters including the dot), else derives it from the
// content type.
func extensionFromURL(rawURL, mimeType string) string {
	if u, err := url.Parse(rawURL); err == nil {
		ext := strings.ToLower(path.Ext(u.Path))
		if len(ext) > 0 && len(ext) <= 5 {
			return ext
		}
	}
	return extensionFromMime(mimeType)
}
