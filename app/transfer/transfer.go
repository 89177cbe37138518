// Package transfer exports and imports the response log as a JSON array of
// {"Job Board": ..., "Timestamp": ...} objects
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/umputun/jobtrack/app/store"
)

type record struct {
	Board     *string `json:"Job Board"`
	Timestamp *string `json:"Timestamp"`
}

// Export writes all records as pretty-printed JSON, four spaces indent, non-ASCII kept as is
func Export(w io.Writer, rr []store.Response) error {
	recs := make([]record, 0, len(rr))
	for _, r := range rr {
		recs = append(recs, record{Board: &r.Board, Timestamp: &r.Timestamp})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("failed to encode %d records: %w", len(rr), err)
	}
	return nil
}

// Import reads records from JSON array. Every object must have both keys.
func Import(r io.Reader) ([]store.Response, error) {
	recs := []record{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to decode records: extra data after json array")
	}
	res := make([]store.Response, 0, len(recs))
	for i, rec := range recs {
		if rec.Board == nil || rec.Timestamp == nil {
			return nil, fmt.Errorf("record %d: %w", i, errors.New(`"Job Board" and "Timestamp" are required`))
		}
		res = append(res, store.Response{Board: *rec.Board, Timestamp: *rec.Timestamp})
	}
	return res, nil
}

// ExportFile writes records to the file, truncating it
func ExportFile(path string, rr []store.Response) error {
	fh, err := os.Create(path) //nolint:gosec // path chosen by user
	if err != nil {
		return fmt.Errorf("can't create %s: %w", path, err)
	}
	if err := Export(fh, rr); err != nil {
		_ = fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("can't close %s: %w", path, err)
	}
	return nil
}

// ImportFile reads records from the file
func ImportFile(path string) ([]store.Response, error) {
	fh, err := os.Open(path) //nolint:gosec // path chosen by user
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", path, err)
	}
	defer fh.Close() //nolint:errcheck // read only
	return Import(fh)
}
