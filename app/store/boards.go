package store

import (
	"strings"

	log "github.com/go-pkgz/lgr"
)

// BuiltinBoards is the default catalog of well-known job boards shown after custom ones
var BuiltinBoards = []string{
	"hh.kz", "career.habr.com", "dou.ua", "getmatch.ru",
	"djinni.co", "indeed.com", "jobs.devby.io",
	"djinni.co/jobs", "glassdoor.com/Job", "wellfound.com/jobs",
	"linkedin.com",
}

// Boards is a list of custom job board names stored in a single-column csv file, plus the built-in catalog
type Boards struct {
	path    string
	builtin []string
}

// NewBoards makes Boards for the file. Empty builtin falls back to BuiltinBoards.
func NewBoards(path string, builtin []string) *Boards {
	if len(builtin) == 0 {
		builtin = BuiltinBoards
	}
	return &Boards{path: path, builtin: builtin}
}

// Custom returns persisted names in file order. Missing file means no custom boards.
func (b *Boards) Custom() ([]string, error) {
	rows, err := readCSV(b.path, -1)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		res = append(res, row[0])
	}
	return res, nil
}

// List returns custom names followed by the built-in catalog. Names repeated in both
// are shown once, storage is not touched.
func (b *Boards) List() ([]string, error) {
	custom, err := b.Custom()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(custom)+len(b.builtin))
	res := make([]string, 0, len(custom)+len(b.builtin))
	for _, name := range append(custom, b.builtin...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return res, nil
}

// Merge appends names missing from the custom file. Comparison is exact and case-sensitive,
// each new name added once, in order of first appearance. Returns added names.
func (b *Boards) Merge(names []string) ([]string, error) {
	custom, err := b.Custom()
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(custom))
	for _, name := range custom {
		known[name] = true
	}

	added := []string{}
	for _, name := range names {
		if name == "" || known[name] {
			continue
		}
		known[name] = true
		added = append(added, name)
	}
	if len(added) == 0 {
		return added, nil
	}

	rows := make([][]string, 0, len(custom)+len(added))
	for _, name := range append(custom, added...) {
		rows = append(rows, []string{name})
	}
	if err := writeCSV(b.path, rows); err != nil {
		return nil, err
	}
	log.Printf("[INFO] added %d custom boards: %v", len(added), added)
	return added, nil
}

// Filter returns names starting with prefix, case-insensitive. Empty prefix matches all.
func Filter(names []string, prefix string) []string {
	p := strings.ToLower(prefix)
	res := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), p) {
			res = append(res, name)
		}
	}
	return res
}
