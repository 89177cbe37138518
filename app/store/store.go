// Package store keeps the response log and the list of custom job boards.
// The log is a flat table of (job board, timestamp) pairs, every mutation rewrites the whole table.
// Two backends are provided, CSV file (default, compatible with files made by the old tracker)
// and SQLite. Row identity is positional, there is no surrogate key.
package store

import (
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the fixed timestamp format of a response record
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the date part of TimeLayout, used as a prefix for clear-by-date
const DateLayout = "2006-01-02"

// ErrStale returned by DeleteAt if the row at the given position doesn't match the expected record anymore
var ErrStale = errors.New("record at position changed")

// Response is a single reply received from a job board
type Response struct {
	Board     string
	Timestamp string
}

// NewResponse makes a response for the board stamped with ts in TimeLayout
func NewResponse(board string, ts time.Time) Response {
	return Response{Board: board, Timestamp: ts.Format(TimeLayout)}
}

// Time parses Timestamp in local time zone
func (r Response) Time() (time.Time, error) {
	ts, err := time.ParseInLocation(TimeLayout, r.Timestamp, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q for %s: %w", r.Timestamp, r.Board, err)
	}
	return ts, nil
}

func (r Response) String() string {
	return r.Board + " " + r.Timestamp
}

// removeAt drops the element at idx if it still equals exp
func removeAt(rr []Response, idx int, exp Response) ([]Response, error) {
	if idx < 0 || idx >= len(rr) {
		return nil, fmt.Errorf("position %d out of range [0:%d]: %w", idx, len(rr), ErrStale)
	}
	if rr[idx] != exp {
		return nil, fmt.Errorf("expected %q at %d, found %q: %w", exp, idx, rr[idx], ErrStale)
	}
	res := make([]Response, 0, len(rr)-1)
	res = append(res, rr[:idx]...)
	return append(res, rr[idx+1:]...), nil
}
