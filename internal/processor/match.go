package processor

import (
	"strings"
	"time"
)

// ImageExtensions are the path suffixes counted as image requests
var ImageExtensions = []string{".jpg", ".gif", ".png"}

// BrowserKeywords are the user agent substrings counted as browsers
var BrowserKeywords = []string{"Firefox", "Chrome", "Safari", "MSIE"}

// TimestampLayout accepts month, day, hour, minute and second with one or two digits
const TimestampLayout = "1/2/2006 15:4:5"

// HasSuffixFold reports whether s ends with one of suffixes, ignoring case
func HasSuffixFold(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
			return true
		}
	}
	return false
}

// FirstKeyword returns the keyword that starts leftmost in s.
// Keywords starting at the same position are tried in order.
func FirstKeyword(s string, keywords []string) (string, bool) {
	best, bestIndex := "", -1
	for _, keyword := range keywords {
		i := strings.Index(s, keyword)
		if i < 0 {
			continue
		}
		if bestIndex < 0 || i < bestIndex {
			best, bestIndex = keyword, i
		}
	}
	return best, bestIndex >= 0
}

// ParseHour returns the hour of day of a M/D/YYYY H:MM:SS timestamp
func ParseHour(timestamp string) (int, bool) {
	// time.Parse accepts a fractional second after the seconds field even when the layout has none
	if !endsWithSeconds(timestamp) {
		return 0, false
	}

	t, err := time.Parse(TimestampLayout, timestamp)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// endsWithSeconds reports whether timestamp ends in ":" followed by one or two digits
func endsWithSeconds(timestamp string) bool {
	i := strings.LastIndexByte(timestamp, ':')
	if i < 0 {
		return false
	}

	seconds := timestamp[i+1:]
	if len(seconds) < 1 || len(seconds) > 2 {
		return false
	}
	for _, c := range seconds {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
