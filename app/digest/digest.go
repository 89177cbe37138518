// Package digest sends the response summary on a cron schedule. Combines cron, summary source,
// repeater and sender together.
package digest

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/jobtrack/app/summary"
	"github.com/umputun/jobtrack/app/tracker"
)

//go:generate moq -out mocks/cron.go -pkg mocks -skip-ensure -fmt goimports . Cron
//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// Reporter is a blocking service sending summary digests on schedule
type Reporter struct {
	Cron
	Source    Source
	Sender    Sender
	Repeater  Repeater
	Spec      string        // standard 5 fields cron spec, i.e. "0 21 * * *"
	Subject   string        // subject template, i.e. "responses {{.DATE}}"
	SkipEmpty bool          // don't send if nothing added today
	Timeout   time.Duration // per-send timeout
	Now       func() time.Time
}

// Cron interface defines basic robfig/cron methods used by reporter
type Cron interface {
	Start()
	Stop() context.Context
	Schedule(schedule cron.Schedule, cmd cron.Job) cron.EntryID
}

// Source provides a fresh view of responses and summary, implemented by tracker.Tracker
type Source interface {
	Snapshot() (tracker.Snapshot, error)
}

// Sender delivers summary, implemented by notify.Service
type Sender interface {
	Send(ctx context.Context, subj string, rows []summary.Row) error
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Do runs blocking digest scheduler till ctx canceled
func (r *Reporter) Do(ctx context.Context) error {
	sched, err := cron.ParseStandard(r.Spec)
	if err != nil {
		return fmt.Errorf("can't parse digest schedule %q: %w", r.Spec, err)
	}
	if _, err := makeSubject(r.Subject, r.now(), nil); err != nil {
		return err
	}

	id := r.Schedule(sched, cron.FuncJob(func() {
		if err := r.Send(ctx); err != nil {
			log.Printf("[WARN] digest failed, %v", err)
		}
		log.Printf("[DEBUG] next digest: %s", sched.Next(r.now()).Format(time.RFC3339))
	}))
	log.Printf("[INFO] digest scheduled %q (%v), first: %s", r.Spec, id, sched.Next(r.now()).Format(time.RFC3339))

	r.Start()
	<-ctx.Done()
	log.Print("[DEBUG] digest terminated")
	<-r.Stop().Done()
	return nil
}

// Send makes the summary and delivers it right away, with retries
func (r *Reporter) Send(ctx context.Context) error {
	snap, err := r.Source.Snapshot()
	if err != nil {
		return fmt.Errorf("can't get summary: %w", err)
	}
	if r.SkipEmpty && summary.TodayTotal(snap.Summary) == 0 {
		log.Printf("[INFO] nothing added today, digest skipped")
		return nil
	}

	subj, err := makeSubject(r.Subject, snap.Today, snap.Summary)
	if err != nil {
		return err
	}

	timeout := r.Timeout
	if timeout == 0 {
		timeout = time.Minute
	}
	ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err = r.Repeater.Do(ctxTimeout, func() error {
		return r.Sender.Send(ctxTimeout, subj, snap.Summary)
	})
	if err != nil {
		return fmt.Errorf("can't send digest %q: %w", subj, err)
	}
	log.Printf("[INFO] digest sent, %s", subj)
	return nil
}

func (r *Reporter) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
