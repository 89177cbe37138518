package digest

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/umputun/jobtrack/app/summary"
)

// DefaultSubject used if no subject template set
const DefaultSubject = "Job responses {{.DATE}}, today {{.TODAY}} of {{.TOTAL}}"

// subjectData holds elements available in subject template, like {{.DATE}}
type subjectData struct {
	DATE     string // 2006-01-02
	YYYYMMDD string
	WEEKDAY  string
	TODAY    int
	TOTAL    int
	BOARDS   int
}

// makeSubject fills subject template for the given day and summary rows
func makeSubject(subj string, ts time.Time, rows []summary.Row) (string, error) {
	if subj == "" {
		subj = DefaultSubject
	}
	data := subjectData{
		DATE:     ts.Format("2006-01-02"),
		YYYYMMDD: ts.Format("20060102"),
		WEEKDAY:  ts.Weekday().String(),
		TODAY:    summary.TodayTotal(rows),
		BOARDS:   len(rows),
	}
	for _, r := range rows {
		data.TOTAL += r.Total
	}

	tmpl, err := template.New("subject").Parse(subj)
	if err != nil {
		return "", fmt.Errorf("can't parse subject %q: %w", subj, err)
	}
	b := bytes.Buffer{}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("can't make subject from %q: %w", subj, err)
	}
	return b.String(), nil
}
