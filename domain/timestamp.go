package domain

import "time"

// TimestampLayout is ISO-8601 with the 'T' replaced by a space and no zone,
// e.g. "2026-01-02 15:04:05.000". Values are UTC but carry no zone marker.
const TimestampLayout = "2006-01-02 15:04:05.000"

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
