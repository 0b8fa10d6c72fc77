package wordpress

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"eventsync/internal/domain"
)

// ISO8601Millis is the canonical timestamp layout: UTC with millisecond
// precision.
const ISO8601Millis = "2006-01-02T15:04:05.000Z"

// namedEntities are substituted in order before numeric references are
// decoded. WordPress escapes titles and venue names with this small set.
var namedEntities = []struct{ entity, value string }{
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&apos;", "'"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&nbsp;", " "},
}

var (
	decimalRefRe = regexp.MustCompile(`&#(\d+);`)
	hexRefRe     = regexp.MustCompile(`&#x([a-fA-F0-9]+);`)
)

// DecodeEntities replaces the named HTML entities WordPress emits, then
// decodes decimal and hex character references to their code points.
// Out-of-range references decode to the empty string.
func DecodeEntities(input string) string {
	output := input
	for _, e := range namedEntities {
		output = strings.ReplaceAll(output, e.entity, e.value)
	}

	output = decimalRefRe.ReplaceAllStringFunc(output, func(match string) string {
		code, err := strconv.ParseInt(match[2:len(match)-1], 10, 64)
		if err != nil || code < 0 || code > utf8.MaxRune {
			return ""
		}
		return string(rune(code))
	})

	output = hexRefRe.ReplaceAllStringFunc(output, func(match string) string {
		code, err := strconv.ParseInt(match[3:len(match)-1], 16, 64)
		if err != nil || code < 0 || code > utf8.MaxRune {
			return ""
		}
		return string(rune(code))
	})

	return output
}

// CleanText decodes entities and trims whitespace. The empty string means
// absent: empty or whitespace-only input normalizes to "".
func CleanText(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(DecodeEntities(value))
}

// wpDateLayouts are tried in order. WordPress exports use a space-separated
// local timestamp; the webhook occasionally delivers RFC 3339.
var wpDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a WordPress timestamp. Empty input, the WordPress
// null-date sentinel ("0000-00-00...") and unparseable values all report
// ok=false. A single space is accepted as the date/time separator.
// Offset-less timestamps are interpreted as UTC.
func ParseDate(value string) (time.Time, bool) {
	if value == "" || strings.HasPrefix(value, "0000-00-00") {
		return time.Time{}, false
	}

	iso := strings.Replace(value, " ", "T", 1)
	for _, layout := range wpDateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeStatus maps a WordPress status string to the internal enum.
// Anything unrecognized, including absent, is draft.
func NormalizeStatus(value string) domain.Status {
	switch value {
	case "publish":
		return domain.StatusPublished
	case "cancelled":
		return domain.StatusCancelled
	case "postponed":
		return domain.StatusPostponed
	default:
		return domain.StatusDraft
	}
}
