// Package tui implements the terminal window. All store calls are made from the bubbletea
// update loop, the only background work is the file watcher and sound playback.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobtrack/app/store"
	"github.com/umputun/jobtrack/app/tracker"
)

const maxSuggestions = 8

// Tracker defines operations used by the window, implemented by tracker.Tracker
type Tracker interface {
	Add(board string) (store.Response, error)
	Snapshot() (tracker.Snapshot, error)
	Delete(idx int, r store.Response) error
	ClearToday() (int, error)
	Export(path string) (int, error)
	Import(path string) (tracker.ImportResult, error)
	Suggest(prefix string) ([]string, error)
}

// Feedback plays sounds and keeps the streak, implemented by feedback.Feedback
type Feedback interface {
	RecordSuccess() string
	RecordError() string
	Streak() int
}

// Params for New
type Params struct {
	Tracker    Tracker
	Feedback   Feedback
	Goal       int              // daily goal, progress bar hidden if 0
	Debounce   time.Duration    // delay before suggestions recomputed
	Changes    <-chan time.Time // optional, external modifications of the log
	ExportPath string           // default path for export and import prompts
}

type tab int

const (
	tabRecent tab = iota
	tabSummary
)

type mode int

const (
	modeInput mode = iota
	modeConfirmDelete
	modeExport
	modeImport
)

// suggestMsg fires after debounce, only the one with the latest seq is used
type suggestMsg struct{ seq int }

// changedMsg sent when the log file modified outside of the window
type changedMsg time.Time

// Model is bubbletea model of the tracker window
type Model struct {
	trk      Tracker
	fb       Feedback
	goal     int
	debounce time.Duration
	changes  <-chan time.Time
	expPath  string

	input     textinput.Model
	pathInput textinput.Model
	bar       progress.Model

	snap   tracker.Snapshot
	tab    tab
	mode   mode
	cursor int
	offset int

	suggestions []string
	suggCursor  int // -1 if no suggestion selected
	seq         int

	status    string
	statusErr bool
	inputErr  bool

	width    int
	height   int
	quitting bool
}

// New makes Model and loads the initial snapshot
func New(p Params) Model {
	in := textinput.New()
	in.Placeholder = "job board, i.e. dou.ua"
	in.Prompt = "> "
	in.CharLimit = 200
	in.Focus()

	pi := textinput.New()
	pi.CharLimit = 500

	if p.ExportPath == "" {
		p.ExportPath = "responses.json"
	}

	m := Model{
		trk:        p.Tracker,
		fb:         p.Feedback,
		goal:       p.Goal,
		debounce:   p.Debounce,
		changes:    p.Changes,
		expPath:    p.ExportPath,
		input:      in,
		pathInput:  pi,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		suggCursor: -1,
		width:      80,
		height:     24,
	}
	m.reload()
	return m
}

// Init starts cursor blinking and waits for log changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitChange())
}

// Update handles keys, debounce ticks and log changes
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampOffset()
		return m, nil

	case suggestMsg:
		if msg.seq != m.seq {
			return m, nil // superseded by a later keystroke
		}
		m.updateSuggestions()
		return m, nil

	case changedMsg:
		log.Printf("[DEBUG] log changed at %s, reload", time.Time(msg).Format(time.RFC3339))
		m.reload()
		return m, m.waitChange()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeExport, modeImport:
			return m.updatePath(msg)
		default:
			return m.updateInput(msg)
		}
	}

	var cmd tea.Cmd
	if m.mode == modeExport || m.mode == modeImport {
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "f9":
		m.submit()
		return m, nil

	case "tab":
		if m.tab == tabRecent {
			m.tab = tabSummary
		} else {
			m.tab = tabRecent
		}
		m.cursor, m.offset = 0, 0
		m.reload()
		return m, nil

	case "up":
		if len(m.suggestions) > 0 {
			if m.suggCursor > -1 {
				m.suggCursor--
			}
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}
		return m, nil

	case "down":
		if len(m.suggestions) > 0 {
			if m.suggCursor < len(m.suggestions)-1 {
				m.suggCursor++
			}
			return m, nil
		}
		if m.cursor < m.rowsCount()-1 {
			m.cursor++
			m.clampOffset()
		}
		return m, nil

	case "esc":
		m.suggestions, m.suggCursor = nil, -1
		return m, nil

	case "ctrl+d":
		if m.tab != tabRecent || len(m.snap.Responses) == 0 {
			m.setStatus("select a response on the recent tab to delete", true)
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case "ctrl+t":
		n, err := m.trk.ClearToday()
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.reload()
		m.setStatus(fmt.Sprintf("%d response(s) cleared for today", n), false)
		return m, nil

	case "ctrl+e":
		return m.enterPath(modeExport)

	case "ctrl+o":
		return m.enterPath(modeImport)
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == prev {
		return m, cmd
	}
	m.inputErr = false
	m.input.TextStyle = lipgloss.NewStyle()
	m.suggCursor = -1
	if strings.TrimSpace(m.input.Value()) == "" {
		m.suggestions = nil
	}
	m.seq++
	seq := m.seq
	tick := tea.Tick(m.debounce, func(time.Time) tea.Msg { return suggestMsg{seq: seq} })
	return m, tea.Batch(cmd, tick)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	if msg.String() != "y" && msg.String() != "Y" {
		m.setStatus("delete canceled", false)
		return m, nil
	}
	if m.cursor >= len(m.snap.Responses) {
		return m, nil
	}
	r := m.snap.Responses[m.cursor]
	if err := m.trk.Delete(m.cursor, r); err != nil {
		if errors.Is(err, store.ErrStale) {
			m.reload()
		}
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.reload()
	m.setStatus(fmt.Sprintf("deleted %s", r), false)
	return m, nil
}

func (m Model) enterPath(md mode) (tea.Model, tea.Cmd) {
	m.mode = md
	m.pathInput.SetValue(m.expPath)
	m.pathInput.CursorEnd()
	m.input.Blur()
	cmd := m.pathInput.Focus()
	return m, cmd
}

func (m Model) updatePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leavePath()
		cmd := m.input.Focus()
		return m, cmd

	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		md := m.mode
		m.leavePath()
		cmd := m.input.Focus()
		if path == "" {
			m.setStatus("no file name given", true)
			return m, cmd
		}
		m.expPath = path
		if md == modeExport {
			m.export(path)
		} else {
			m.importFile(path)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) leavePath() {
	m.mode = modeInput
	m.pathInput.Blur()
}

func (m *Model) export(path string) {
	n, err := m.trk.Export(path)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("%d response(s) exported to %s", n, path), false)
}

func (m *Model) importFile(path string) {
	res, err := m.trk.Import(path)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.cursor, m.offset = 0, 0
	m.reload()
	m.setStatus(fmt.Sprintf("%d response(s) imported from %s, %d new board(s)", res.Records, path, len(res.AddedBoards)), false)
}

// submit adds the highlighted suggestion or the typed board
func (m *Model) submit() {
	board := m.input.Value()
	if strings.TrimSpace(board) != "" && m.suggCursor >= 0 && m.suggCursor < len(m.suggestions) {
		board = m.suggestions[m.suggCursor]
	}

	r, err := m.trk.Add(board)
	if err != nil {
		if errors.Is(err, tracker.ErrEmptyBoard) {
			m.inputErr = true
			m.input.TextStyle = inputErrStyle
			m.fb.RecordError()
			m.setStatus("enter a job board", true)
			return
		}
		m.setStatus(err.Error(), true)
		return
	}

	m.fb.RecordSuccess()
	m.input.Reset()
	m.suggestions, m.suggCursor = nil, -1
	m.seq++ // drop pending suggestion ticks
	m.reload()
	if m.tab == tabRecent {
		m.cursor = max(0, len(m.snap.Responses)-1)
		m.clampOffset()
	}
	m.setStatus(fmt.Sprintf("added %s", r), false)
}

func (m *Model) updateSuggestions() {
	m.suggCursor = -1
	prefix := strings.TrimSpace(m.input.Value())
	if prefix == "" {
		m.suggestions = nil
		return
	}
	res, err := m.trk.Suggest(prefix)
	if err != nil {
		m.suggestions = nil
		m.setStatus(err.Error(), true)
		return
	}
	if len(res) > maxSuggestions {
		res = res[:maxSuggestions]
	}
	m.suggestions = res
}

// reload replaces the snapshot, keeps the old one on error
func (m *Model) reload() {
	snap, err := m.trk.Snapshot()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.snap = snap
	if m.cursor >= m.rowsCount() {
		m.cursor = max(0, m.rowsCount()-1)
	}
	m.clampOffset()
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
	if isErr {
		log.Printf("[WARN] %s", msg)
	}
}

func (m Model) waitChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		ts, ok := <-ch
		if !ok {
			return nil
		}
		return changedMsg(ts)
	}
}

func (m Model) rowsCount() int {
	if m.tab == tabSummary {
		return len(m.snap.Summary)
	}
	return len(m.snap.Responses)
}
