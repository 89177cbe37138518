// Package tracker is the top level service combining the response log, custom boards,
// summary projection and import/export. Every call works on a fresh read of the log.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobtrack/app/store"
	"github.com/umputun/jobtrack/app/summary"
	"github.com/umputun/jobtrack/app/transfer"
)

//go:generate moq -out mocks/response_log.go -pkg mocks -skip-ensure -fmt goimports . ResponseLog
//go:generate moq -out mocks/board_list.go -pkg mocks -skip-ensure -fmt goimports . BoardList

// ErrEmptyBoard returned by Add if no job board given
var ErrEmptyBoard = errors.New("job board is empty")

// ResponseLog defines storage of response records, implemented by store.CSVLog and store.SQLiteLog
type ResponseLog interface {
	Load() ([]store.Response, error)
	Append(r store.Response) error
	DeleteMatching(r store.Response) (int, error)
	DeleteAt(idx int, exp store.Response) error
	Clear(datePrefix string) (int, error)
	Replace(rr []store.Response) error
}

// BoardList defines custom job boards storage, implemented by store.Boards
type BoardList interface {
	List() ([]string, error)
	Merge(names []string) ([]string, error)
}

// Tracker wires the log and boards together
type Tracker struct {
	Log    ResponseLog
	Boards BoardList
	Now    func() time.Time // defaults to time.Now
}

// Snapshot is a consistent view of the log and its summary, made from a single read
type Snapshot struct {
	Responses []store.Response
	Summary   []summary.Row
	Today     time.Time
}

// ImportResult describes a completed import
type ImportResult struct {
	Records     int
	AddedBoards []string
}

// Add appends a response for the board stamped with the current time.
// Board is trimmed, blank board returns ErrEmptyBoard and nothing stored.
func (t *Tracker) Add(board string) (store.Response, error) {
	board = strings.TrimSpace(board)
	if board == "" {
		return store.Response{}, ErrEmptyBoard
	}
	r := store.NewResponse(board, t.now())
	if err := t.Log.Append(r); err != nil {
		return store.Response{}, fmt.Errorf("can't add %q: %w", r, err)
	}
	log.Printf("[INFO] response added, %s", r)
	return r, nil
}

// Snapshot loads all records and builds the summary for today
func (t *Tracker) Snapshot() (Snapshot, error) {
	rr, err := t.Log.Load()
	if err != nil {
		return Snapshot{}, fmt.Errorf("can't load responses: %w", err)
	}
	today := t.now()
	rows, err := summary.Build(rr, today)
	if err != nil {
		return Snapshot{}, fmt.Errorf("can't build summary: %w", err)
	}
	return Snapshot{Responses: rr, Summary: rows, Today: today}, nil
}

// Delete removes exactly one record at position idx, r is the record the caller saw there
func (t *Tracker) Delete(idx int, r store.Response) error {
	if err := t.Log.DeleteAt(idx, r); err != nil {
		return fmt.Errorf("can't delete %q: %w", r, err)
	}
	log.Printf("[INFO] response deleted, %s at %d", r, idx)
	return nil
}

// DeleteMatching removes all records equal to r, duplicates included
func (t *Tracker) DeleteMatching(r store.Response) (int, error) {
	n, err := t.Log.DeleteMatching(r)
	if err != nil {
		return 0, fmt.Errorf("can't delete %q: %w", r, err)
	}
	log.Printf("[INFO] %d response(s) deleted, %s", n, r)
	return n, nil
}

// ClearToday removes all records stamped with today's date
func (t *Tracker) ClearToday() (int, error) {
	today := t.now().Format(store.DateLayout)
	n, err := t.Log.Clear(today)
	if err != nil {
		return 0, fmt.Errorf("can't clear %s: %w", today, err)
	}
	log.Printf("[INFO] %d response(s) cleared for %s", n, today)
	return n, nil
}

// Export writes all records to the json file, returns the number of exported records
func (t *Tracker) Export(path string) (int, error) {
	rr, err := t.Log.Load()
	if err != nil {
		return 0, fmt.Errorf("can't load responses: %w", err)
	}
	if err := transfer.ExportFile(path, rr); err != nil {
		return 0, err
	}
	log.Printf("[INFO] %d response(s) exported to %s", len(rr), path)
	return len(rr), nil
}

// Import replaces the whole log with records from the json file and merges
// their boards into the custom list
func (t *Tracker) Import(path string) (ImportResult, error) {
	rr, err := transfer.ImportFile(path)
	if err != nil {
		return ImportResult{}, err
	}
	if err := t.Log.Replace(rr); err != nil {
		return ImportResult{}, fmt.Errorf("can't replace responses: %w", err)
	}

	names := make([]string, 0, len(rr))
	for _, r := range rr {
		names = append(names, r.Board)
	}
	added, err := t.Boards.Merge(names)
	if err != nil {
		return ImportResult{}, fmt.Errorf("can't merge boards: %w", err)
	}
	log.Printf("[INFO] %d response(s) imported from %s, new boards %v", len(rr), path, added)
	return ImportResult{Records: len(rr), AddedBoards: added}, nil
}

// Suggest returns boards starting with prefix, case-insensitive
func (t *Tracker) Suggest(prefix string) ([]string, error) {
	all, err := t.Boards.List()
	if err != nil {
		return nil, fmt.Errorf("can't list boards: %w", err)
	}
	return store.Filter(all, prefix), nil
}

func (t *Tracker) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}
