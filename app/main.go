package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/robfig/cron/v3"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobtrack/app/config"
	"github.com/umputun/jobtrack/app/digest"
	"github.com/umputun/jobtrack/app/feedback"
	"github.com/umputun/jobtrack/app/notify"
	"github.com/umputun/jobtrack/app/store"
	"github.com/umputun/jobtrack/app/summary"
	"github.com/umputun/jobtrack/app/tracker"
	"github.com/umputun/jobtrack/app/tui"
)

var opts struct {
	DataDir    string        `short:"d" long:"data" env:"JOBTRACK_DATA" default:"." description:"data directory"`
	File       string        `short:"f" long:"file" env:"JOBTRACK_FILE" default:"responses.csv" description:"responses csv file"`
	BoardsFile string        `long:"boards" env:"JOBTRACK_BOARDS" default:"custom_job_boards.csv" description:"custom job boards file"`
	Backend    string        `long:"backend" env:"JOBTRACK_BACKEND" choice:"csv" choice:"sqlite" default:"csv" description:"responses storage"`
	SQLiteFile string        `long:"sqlite" env:"JOBTRACK_SQLITE" default:"responses.db" description:"sqlite file for sqlite backend"`
	Config     string        `short:"c" long:"config" env:"JOBTRACK_CONFIG" description:"yaml config file"`
	Watch      time.Duration `long:"watch" env:"JOBTRACK_WATCH" default:"1s" description:"check interval for external changes, 0 to disable"`
	ExportPath string        `long:"export-path" env:"JOBTRACK_EXPORT_PATH" default:"responses.json" description:"default path for export and import prompts"`
	Dbg        bool          `long:"dbg" env:"JOBTRACK_DEBUG" description:"debug mode"`

	Add    string `short:"a" long:"add" description:"add response for the job board and exit"`
	Export string `long:"export" description:"export all responses to json file and exit"`
	Import string `long:"import" description:"replace all responses with json file and exit"`
	Report bool   `long:"report" description:"print summary and exit, sent to notify destinations if configured"`
	Schema bool   `long:"schema" description:"print config json schema and exit"`

	Sound struct {
		Enabled bool   `long:"enabled" env:"ENABLED" description:"enable sound cues"`
		Player  string `long:"player" env:"PLAYER" default:"paplay" description:"sound player command"`
	} `group:"sound" namespace:"sound" env-namespace:"JOBTRACK_SOUND"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"filename" env:"FILENAME" default:"jobtrack.log" description:"file to log to"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum size in megabytes of the log file before it gets rotated"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"maximum number of old log files to retain"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"maximum number of days to retain old log files"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"JOBTRACK_LOG"`

	Digest struct {
		Enabled   bool          `long:"enabled" env:"ENABLED" description:"run as digest daemon instead of the window"`
		Spec      string        `long:"spec" env:"SPEC" default:"0 21 * * *" description:"digest schedule, cron format"`
		Subject   string        `long:"subject" env:"SUBJECT" default:"Job responses {{.DATE}}, today {{.TODAY}} of {{.TOTAL}}" description:"digest subject template"`
		SkipEmpty bool          `long:"skip-empty" env:"SKIP_EMPTY" description:"don't send digest if nothing added today"`
		Attempts  int           `long:"attempts" env:"ATTEMPTS" default:"3" description:"how many times to repeat failed delivery"`
		Duration  time.Duration `long:"duration" env:"DURATION" default:"1s" description:"initial retry duration"`
		Factor    float64       `long:"factor" env:"FACTOR" default:"3" description:"backoff factor"`
		Jitter    bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"digest" namespace:"digest" env-namespace:"JOBTRACK_DIGEST"`

	Notify struct {
		SMTPHost     string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort     int           `long:"smtp-port" env:"SMTP_PORT" default:"25" description:"SMTP port"`
		SMTPUsername string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		SMTPTLS      bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		Timeout      time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"delivery timeout"`
		FromEmail    string        `long:"from" env:"FROM" description:"SMTP from email"`
		ToEmails     []string      `long:"to" env:"TO" description:"SMTP to email(s)" env-delim:","`
		Webhooks     []string      `long:"webhook" env:"WEBHOOK" description:"webhook url(s) for plain text summary" env-delim:","`
		HostName     string        `long:"host" env:"HOSTNAME" description:"host name used in default from email"`
	} `group:"notify" namespace:"notify" env-namespace:"JOBTRACK_NOTIFY"`
}

var revision = "unknown"

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()
	log.Printf("[INFO] jobtrack %s", revision)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT and SIGTERM

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cancel()
		os.Exit(1)
	}
	cancel()
}

// run dispatches to the requested mode, the window is the default one
func run(ctx context.Context) error {
	if opts.Schema {
		return printSchema(os.Stdout)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	trk, closeLog, err := makeTracker(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	switch {
	case opts.Add != "":
		r, err := trk.Add(opts.Add)
		if err != nil {
			return err
		}
		fmt.Printf("added %s\n", r)
		return nil
	case opts.Export != "":
		n, err := trk.Export(opts.Export)
		if err != nil {
			return err
		}
		fmt.Printf("Data has been exported to %s, %d response(s)\n", opts.Export, n)
		return nil
	case opts.Import != "":
		res, err := trk.Import(opts.Import)
		if err != nil {
			return err
		}
		fmt.Printf("Data has been imported from %s, %d response(s), new boards %v\n", opts.Import, res.Records, res.AddedBoards)
		return nil
	case opts.Report:
		return report(ctx, trk, os.Stdout)
	case opts.Digest.Enabled:
		return makeReporter(trk).Do(ctx)
	}

	return runWindow(ctx, trk, cfg)
}

func runWindow(ctx context.Context, trk *tracker.Tracker, cfg config.Config) error {
	var changes <-chan time.Time
	if opts.Watch > 0 {
		changes = store.NewWatcher(logPath(), opts.Watch).Changes(ctx)
	}

	m := tui.New(tui.Params{
		Tracker:    trk,
		Feedback:   makeFeedback(cfg),
		Goal:       cfg.Goal,
		Debounce:   cfg.Debounce,
		Changes:    changes,
		ExportPath: opts.ExportPath,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil // terminated by signal
		}
		return fmt.Errorf("window failed: %w", err)
	}
	return nil
}

// makeTracker makes tracker with the selected backend, returned func closes the backend
func makeTracker(cfg config.Config) (*tracker.Tracker, func(), error) {
	trk := &tracker.Tracker{
		Boards: store.NewBoards(filepath.Join(opts.DataDir, opts.BoardsFile), cfg.Boards),
		Now:    time.Now,
	}

	switch opts.Backend {
	case "sqlite":
		sl, err := store.NewSQLiteLog(logPath())
		if err != nil {
			return nil, nil, err
		}
		trk.Log = sl
		log.Printf("[INFO] responses storage %s", sl)
		return trk, func() {
			if err := sl.Close(); err != nil {
				log.Printf("[WARN] can't close %s, %v", sl, err)
			}
		}, nil
	default:
		cl := store.NewCSVLog(logPath())
		trk.Log = cl
		log.Printf("[INFO] responses storage %s", cl)
		return trk, func() {}, nil
	}
}

func logPath() string {
	if opts.Backend == "sqlite" {
		return filepath.Join(opts.DataDir, opts.SQLiteFile)
	}
	return filepath.Join(opts.DataDir, opts.File)
}

func makeFeedback(cfg config.Config) *feedback.Feedback {
	params := feedback.Params{ErrorSound: cfg.Sounds.Error, SuccessSounds: cfg.Sounds.Success}
	if !opts.Sound.Enabled {
		return feedback.New(nil, params)
	}
	log.Printf("[INFO] sound cues enabled, player %q", opts.Sound.Player)
	return feedback.New(feedback.CmdPlayer{Command: opts.Sound.Player}, params)
}

func makeNotifier() *notify.Service {
	if len(opts.Notify.ToEmails) == 0 && len(opts.Notify.Webhooks) == 0 {
		return nil
	}
	if opts.Notify.FromEmail == "" {
		opts.Notify.FromEmail = "jobtrack@" + makeHostName()
	}
	return notify.NewService(notify.Params{
		SMTPHost:     opts.Notify.SMTPHost,
		SMTPPort:     opts.Notify.SMTPPort,
		SMTPUsername: opts.Notify.SMTPUsername,
		SMTPPassword: opts.Notify.SMTPPassword,
		SMTPTLS:      opts.Notify.SMTPTLS,
		FromEmail:    opts.Notify.FromEmail,
		ToEmails:     opts.Notify.ToEmails,
		WebhookURLs:  opts.Notify.Webhooks,
		Timeout:      opts.Notify.Timeout,
	})
}

func makeReporter(trk *tracker.Tracker) *digest.Reporter {
	res := &digest.Reporter{
		Cron:   cron.New(),
		Source: trk,
		Repeater: repeater.New(&strategy.Backoff{Repeats: opts.Digest.Attempts, Duration: opts.Digest.Duration,
			Factor: opts.Digest.Factor, Jitter: opts.Digest.Jitter}),
		Spec:      opts.Digest.Spec,
		Subject:   opts.Digest.Subject,
		SkipEmpty: opts.Digest.SkipEmpty,
		Timeout:   opts.Notify.Timeout * time.Duration(max(opts.Digest.Attempts, 1)),
	}
	if svc := makeNotifier(); svc != nil {
		res.Sender = svc
	} else {
		res.Sender = logSender{}
		log.Printf("[WARN] no notify destinations, digest goes to log only")
	}
	return res
}

// report prints the summary and sends it if notifications configured
func report(ctx context.Context, trk *tracker.Tracker, w io.Writer) error {
	snap, err := trk.Snapshot()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, summary.Text(snap.Summary)); err != nil {
		return fmt.Errorf("can't print summary: %w", err)
	}

	svc := makeNotifier()
	if svc == nil {
		return nil
	}
	ctxTimeout, cancel := context.WithTimeout(ctx, opts.Notify.Timeout)
	defer cancel()
	subj := "Job responses " + snap.Today.Format(store.DateLayout)
	if err := svc.Send(ctxTimeout, subj, snap.Summary); err != nil {
		return fmt.Errorf("can't send summary to %s: %w", svc, err)
	}
	log.Printf("[INFO] summary sent to %s", svc)
	return nil
}

// logSender is digest sender used when no destinations configured
type logSender struct{}

func (logSender) Send(_ context.Context, subj string, rows []summary.Row) error {
	log.Printf("[INFO] %s\n%s", subj, summary.Text(rows))
	return nil
}

func printSchema(w io.Writer) error {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("can't marshal schema: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("can't print schema: %w", err)
	}
	return nil
}

func makeHostName() string {
	if opts.Notify.HostName != "" {
		return opts.Notify.HostName
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// setupLogs sends logs to the rotated file if enabled, discards them otherwise as the window owns the terminal
func setupLogs() io.Writer {
	var out io.Writer = io.Discard
	if opts.Log.Enabled {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Out(out), log.Err(out), log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return out
	}
	log.Setup(log.Out(out), log.Err(out), log.Msec)
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				log.Printf("[INFO] stack trace:\n%s", string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGTERM
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM)
}
