package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/go-pkgz/lgr"
)

// CSVLog keeps responses in a two-column csv file without header.
// Not thread safe, the file is assumed to be owned by a single running instance.
type CSVLog struct {
	path string
}

// NewCSVLog makes a log for the file. The file is not touched until the first call.
func NewCSVLog(path string) *CSVLog {
	log.Printf("[DEBUG] csv log %s", path)
	return &CSVLog{path: path}
}

// Load reads all records. Missing file is an empty log, a row with a wrong number of fields is an error.
func (l *CSVLog) Load() ([]Response, error) {
	rows, err := readCSV(l.path, 2)
	if err != nil {
		return nil, err
	}
	res := make([]Response, 0, len(rows))
	for _, row := range rows {
		res = append(res, Response{Board: row[0], Timestamp: row[1]})
	}
	return res, nil
}

// Append adds a record to the end of the log, rewriting the whole file
func (l *CSVLog) Append(r Response) error {
	rr, err := l.Load()
	if err != nil {
		return err
	}
	return l.Replace(append(rr, r))
}

// DeleteMatching removes every record equal to r, all duplicates included. Returns the number of removed records.
func (l *CSVLog) DeleteMatching(r Response) (int, error) {
	return l.filter(func(x Response) bool { return x == r })
}

// DeleteAt removes exactly one record at position idx. The record must still be equal to exp,
// otherwise ErrStale returned and nothing changed.
func (l *CSVLog) DeleteAt(idx int, exp Response) error {
	rr, err := l.Load()
	if err != nil {
		return err
	}
	res, err := removeAt(rr, idx, exp)
	if err != nil {
		return err
	}
	return l.Replace(res)
}

// Clear removes every record with timestamp starting with datePrefix. Plain string prefix, no date parsing.
func (l *CSVLog) Clear(datePrefix string) (int, error) {
	return l.filter(func(x Response) bool { return strings.HasPrefix(x.Timestamp, datePrefix) })
}

// Replace overwrites the log with rr. Not atomic, the file is truncated first.
func (l *CSVLog) Replace(rr []Response) error {
	rows := make([][]string, 0, len(rr))
	for _, r := range rr {
		rows = append(rows, []string{r.Board, r.Timestamp})
	}
	return writeCSV(l.path, rows)
}

func (l *CSVLog) String() string {
	return "csv:" + l.path
}

// filter rewrites the log without records matching drop
func (l *CSVLog) filter(drop func(Response) bool) (int, error) {
	rr, err := l.Load()
	if err != nil {
		return 0, err
	}
	keep := make([]Response, 0, len(rr))
	for _, r := range rr {
		if !drop(r) {
			keep = append(keep, r)
		}
	}
	if err := l.Replace(keep); err != nil {
		return 0, err
	}
	return len(rr) - len(keep), nil
}

// readCSV reads all rows, fields < 0 allows any width. Missing file returns empty result.
func readCSV(path string, fields int) ([][]string, error) {
	fh, err := os.Open(path) //nolint:gosec // path from user's options
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return [][]string{}, nil
		}
		return nil, fmt.Errorf("can't open %s: %w", path, err)
	}
	defer fh.Close() //nolint:errcheck // read only

	rdr := csv.NewReader(fh)
	rdr.FieldsPerRecord = fields
	res := [][]string{}
	for {
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("can't read %s: %w", path, err)
		}
		res = append(res, row)
	}
	return res, nil
}

// writeCSV truncates the file and writes rows with CRLF line endings, as the old tracker did
func writeCSV(path string, rows [][]string) error {
	fh, err := os.Create(path) //nolint:gosec // path from user's options
	if err != nil {
		return fmt.Errorf("can't create %s: %w", path, err)
	}
	wr := csv.NewWriter(fh)
	wr.UseCRLF = true
	if err := wr.WriteAll(rows); err != nil {
		_ = fh.Close()
		return fmt.Errorf("can't write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("can't close %s: %w", path, err)
	}
	return nil
}
