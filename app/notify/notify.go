// Package notify delivers response summaries via email and webhooks
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"

	"github.com/umputun/jobtrack/app/summary"
)

//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports github.com/go-pkgz/notify Notifier

// Service sends summaries to all configured destinations
type Service struct {
	destinations []notify.Notifier
	fromEmail    string
	toEmail      []string
	webhooks     []string
	timeout      time.Duration
}

// Params for Service
type Params struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPTLS      bool
	FromEmail    string
	ToEmails     []string
	WebhookURLs  []string
	Timeout      time.Duration
}

// NewService makes Service from params. Returns nil if no destinations defined.
func NewService(p Params) *Service {
	res := Service{fromEmail: p.FromEmail, toEmail: p.ToEmails, webhooks: p.WebhookURLs, timeout: p.Timeout}
	if res.timeout == 0 {
		res.timeout = 10 * time.Second
	}

	if len(p.ToEmails) > 0 {
		res.destinations = append(res.destinations, notify.NewEmail(notify.SMTPParams{
			Host:        p.SMTPHost,
			Port:        p.SMTPPort,
			TLS:         p.SMTPTLS,
			ContentType: "text/html",
			Username:    p.SMTPUsername,
			Password:    p.SMTPPassword,
			TimeOut:     res.timeout,
		}))
	}
	if len(p.WebhookURLs) > 0 {
		res.destinations = append(res.destinations, notify.NewWebhook(notify.WebhookParams{
			Timeout: res.timeout,
			Headers: []string{"Content-Type:text/plain"},
		}))
	}

	if len(res.destinations) == 0 {
		return nil
	}
	log.Printf("[INFO] summary notifications enabled, emails %v, webhooks %d", p.ToEmails, len(p.WebhookURLs))
	return &res
}

// Send delivers the summary to every destination. Email gets html, webhooks get plain text.
// All destinations are tried, errors are joined.
func (s *Service) Send(ctx context.Context, subj string, rows []summary.Row) error {
	var errs []error
	for _, dest := range s.destinations {
		switch dest.Schema() {
		case "mailto":
			html, err := MakeSummaryHTML(subj, rows)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			to := fmt.Sprintf("mailto:%s?from=%s&subject=%s", strings.Join(s.toEmail, ","), s.fromEmail, url.QueryEscape(subj))
			if err := dest.Send(ctx, to, html); err != nil {
				errs = append(errs, err)
			}
		default:
			text := subj + "\n\n" + summary.Text(rows)
			for _, hook := range s.webhooks {
				if err := dest.Send(ctx, hook, text); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}

func (s *Service) String() string {
	names := make([]string, 0, len(s.destinations))
	for _, d := range s.destinations {
		names = append(names, d.Schema())
	}
	return strings.Join(names, ",")
}

// MakeSummaryHTML creates html summary to be sent by email
func MakeSummaryHTML(subj string, rows []summary.Row) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
	<head>
		<meta name="viewport" content="width=device-width" />
		<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
		<style type="text/css">
			body {
				font-family: "Arial";
				font-size: 1.0em;
			}
			td, th {
				padding: 0.2em 0.8em;
				text-align: left;
			}
			.bold {
				color: #882828;
				font-weight: 900;
			}
		</style>
	</head>

	<body>
		<p>{{.Subject}} at {{.TS.Format "2006-01-02T15:04:05Z07:00"}}</p>
		<table>
			<tr><th>Job Board</th><th>Responses Today</th><th>Total Responses</th></tr>
			{{- range .Rows}}
			<tr><td>{{.Board}}</td><td>{{.Today}}</td><td>{{.Total}}</td></tr>
			{{- end}}
			<tr><td class="bold">all</td><td class="bold">{{.Today}}</td><td class="bold">{{.Total}}</td></tr>
		</table>
	</body>
</html>
`
	total := 0
	for _, r := range rows {
		total += r.Total
	}
	data := struct {
		Subject string
		TS      time.Time
		Rows    []summary.Row
		Today   int
		Total   int
	}{
		Subject: subj,
		TS:      time.Now(),
		Rows:    rows,
		Today:   summary.TodayTotal(rows),
		Total:   total,
	}

	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("can't parse summary template: %w", err)
	}
	buf := bytes.Buffer{}
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to apply template: %w", err)
	}
	return buf.String(), nil
}
