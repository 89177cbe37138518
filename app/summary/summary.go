// Package summary builds per-board aggregates of the response log
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/umputun/jobtrack/app/store"
)

// Row is a derived per-board aggregate, never persisted
type Row struct {
	Board string
	Today int
	Total int
}

// Build scans all records and groups them by board in order of first appearance.
// Today counts records with the same local date as today. A record with a bad timestamp fails the whole build.
func Build(rr []store.Response, today time.Time) ([]Row, error) {
	ty, tm, td := today.In(time.Local).Date()
	res := []Row{}
	idx := map[string]int{}
	for _, r := range rr {
		ts, err := r.Time()
		if err != nil {
			return nil, err
		}
		i, ok := idx[r.Board]
		if !ok {
			i = len(res)
			idx[r.Board] = i
			res = append(res, Row{Board: r.Board})
		}
		res[i].Total++
		if y, m, d := ts.Date(); y == ty && m == tm && d == td {
			res[i].Today++
		}
	}
	return res, nil
}

// TodayTotal sums today's counts over all rows
func TodayTotal(rows []Row) (total int) {
	for _, r := range rows {
		total += r.Today
	}
	return total
}

// Text renders rows as a plain aligned table with a totals line
func Text(rows []Row) string {
	width := len("Job Board")
	for _, r := range rows {
		width = max(width, len(r.Board))
	}
	b := strings.Builder{}
	fmt.Fprintf(&b, "%-*s  %6s  %6s\n", width, "Job Board", "Today", "Total")
	total := 0
	for _, r := range rows {
		fmt.Fprintf(&b, "%-*s  %6d  %6d\n", width, r.Board, r.Today, r.Total)
		total += r.Total
	}
	fmt.Fprintf(&b, "%-*s  %6d  %6d\n", width, "all", TodayTotal(rows), total)
	return b.String()
}
