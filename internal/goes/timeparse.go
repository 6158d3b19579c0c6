package goes

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ParseError reports a timestamp that could not be interpreted.
// Callers treat it as a per-record failure, not a batch failure.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errBadTimestamp = errors.New("unrecognized date-time layout")

// offsetFreeLayouts are tried for strings carrying no UTC offset.
// Such timestamps are taken as already UTC, never as local time.
var offsetFreeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime normalizes an ISO-8601-like timestamp string to UTC.
// A trailing "Z" is equivalent to "+00:00"; an explicit non-UTC offset is
// converted; no offset at all means the instant is already UTC.
func ParseTime(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, in); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range offsetFreeLayouts {
		if t, err := time.ParseInLocation(layout, in, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Input: s, Err: errBadTimestamp}
}
