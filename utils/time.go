package utils

import "time"

// Manila returns the clinic's local timezone (the frontend renders all
// timestamps in Philippine time).
func Manila() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		return time.UTC // Fallback to UTC if tzdata is unavailable
	}
	return loc
}

// ManilaNow formats the current time the way the frontend expects,
// e.g. "8/29/2026, 3:04:05 PM".
func ManilaNow() string {
	return FormatManila(time.Now())
}

// FormatManila formats t as a locale string in clinic time.
func FormatManila(t time.Time) string {
	return t.In(Manila()).Format("1/2/2006, 3:04:05 PM")
}
