package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobtrack/app/feedback"
	fbmocks "github.com/umputun/jobtrack/app/feedback/mocks"
	"github.com/umputun/jobtrack/app/store"
	"github.com/umputun/jobtrack/app/tracker"
)

var now = time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)

type env struct {
	trk    *tracker.Tracker
	player *fbmocks.PlayerMock
	dir    string
}

func newModel(t *testing.T, rr ...store.Response) (Model, env) {
	t.Helper()
	dir := t.TempDir()
	trk := &tracker.Tracker{
		Log:    store.NewCSVLog(filepath.Join(dir, "responses.csv")),
		Boards: store.NewBoards(filepath.Join(dir, "custom_job_boards.csv"), nil),
		Now:    func() time.Time { return now },
	}
	require.NoError(t, trk.Log.Replace(rr))
	player := &fbmocks.PlayerMock{PlayFunc: func(string) error { return nil }}
	fb := feedback.New(player, feedback.Params{ErrorSound: "err.mp3", SuccessSounds: []string{"ok1.mp3", "ok2.mp3"}})
	m := New(Params{Tracker: trk, Feedback: fb, Goal: 4, Debounce: time.Millisecond, ExportPath: filepath.Join(dir, "export.json")})
	return m, env{trk: trk, player: player, dir: dir}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		res, _ := m.Update(msg)
		m = res.(Model)
	}
	return m
}

func typeText(m Model, s string) Model {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestModel_AddBoard(t *testing.T) {
	m, e := newModel(t)
	assert.Empty(t, m.snap.Responses)

	m = typeText(m, "dou.ua")
	assert.Equal(t, "dou.ua", m.input.Value())
	m = send(m, key(tea.KeyEnter))

	assert.Equal(t, []store.Response{{Board: "dou.ua", Timestamp: "2024-05-06 10:00:00"}}, m.snap.Responses)
	assert.Empty(t, m.input.Value(), "input cleared")
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "added dou.ua 2024-05-06 10:00:00")
	assert.Equal(t, 1, m.fb.Streak())

	m = typeText(m, "hh.kz")
	m = send(m, key(tea.KeyF9))
	assert.Len(t, m.snap.Responses, 2)
	assert.Equal(t, 1, m.cursor, "cursor on the added row")
	require.Len(t, e.player.PlayCalls(), 2)
	assert.Equal(t, "ok1.mp3", e.player.PlayCalls()[0].File)
	assert.Equal(t, "ok2.mp3", e.player.PlayCalls()[1].File)

	rr, err := e.trk.Log.Load()
	require.NoError(t, err)
	assert.Len(t, rr, 2)
}

func TestModel_AddEmpty(t *testing.T) {
	m, e := newModel(t)
	m = typeText(m, "ok")
	m = send(m, key(tea.KeyEnter))
	require.Equal(t, 1, m.fb.Streak())

	m = typeText(m, "   ")
	m = send(m, key(tea.KeyEnter))
	assert.True(t, m.inputErr)
	assert.True(t, m.statusErr)
	assert.Equal(t, 0, m.fb.Streak(), "streak reset")
	assert.Equal(t, "err.mp3", e.player.PlayCalls()[1].File)
	assert.Len(t, m.snap.Responses, 1, "nothing added")

	m = typeText(m, "x")
	assert.False(t, m.inputErr, "error cleared on typing")
}

func TestModel_SuggestionsDebounce(t *testing.T) {
	m, _ := newModel(t)
	m = typeText(m, "d")
	first := m.seq
	m = typeText(m, "j")
	require.Equal(t, first+1, m.seq)

	m = send(m, suggestMsg{seq: first})
	assert.Empty(t, m.suggestions, "stale tick ignored")

	m = send(m, suggestMsg{seq: m.seq})
	assert.Equal(t, []string{"djinni.co", "djinni.co/jobs"}, m.suggestions)

	m = send(m, key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 1, m.suggCursor)
	m = send(m, key(tea.KeyEnter))
	require.Len(t, m.snap.Responses, 1)
	assert.Equal(t, "djinni.co/jobs", m.snap.Responses[0].Board)
	assert.Empty(t, m.suggestions)
	assert.Equal(t, -1, m.suggCursor)
}

func TestModel_SuggestionsCaseInsensitive(t *testing.T) {
	m, _ := newModel(t)
	m = typeText(m, "LINK")
	m = send(m, suggestMsg{seq: m.seq})
	assert.Equal(t, []string{"linkedin.com"}, m.suggestions)

	m = send(m, key(tea.KeyEsc))
	assert.Empty(t, m.suggestions)
}

func TestModel_DeleteWithConfirmation(t *testing.T) {
	dup := store.Response{Board: "hh.kz", Timestamp: "2024-05-06 08:00:00"}
	m, e := newModel(t, dup, dup, store.Response{Board: "dou.ua", Timestamp: "2024-05-05 08:00:00"})
	require.Len(t, m.snap.Responses, 3)

	m = send(m, key(tea.KeyDown), key(tea.KeyCtrlD))
	assert.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), "Delete hh.kz 2024-05-06 08:00:00? (y/n)")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, modeInput, m.mode)
	assert.Len(t, m.snap.Responses, 3, "declined, nothing deleted")

	m = send(m, key(tea.KeyCtrlD), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, modeInput, m.mode)
	rr, err := e.trk.Log.Load()
	require.NoError(t, err)
	assert.Equal(t, []store.Response{dup, {Board: "dou.ua", Timestamp: "2024-05-05 08:00:00"}}, rr, "only one duplicate removed")
}

func TestModel_DeleteOnSummaryTab(t *testing.T) {
	m, _ := newModel(t, store.Response{Board: "hh.kz", Timestamp: "2024-05-06 08:00:00"})
	m = send(m, key(tea.KeyTab))
	assert.Equal(t, tabSummary, m.tab)
	m = send(m, key(tea.KeyCtrlD))
	assert.Equal(t, modeInput, m.mode)
	assert.True(t, m.statusErr)
}

func TestModel_ClearToday(t *testing.T) {
	old := store.Response{Board: "dou.ua", Timestamp: "2024-05-05 08:00:00"}
	m, _ := newModel(t, old, store.Response{Board: "hh.kz", Timestamp: "2024-05-06 08:00:00"},
		store.Response{Board: "hh.kz", Timestamp: "2024-05-06 09:00:00"})
	m = send(m, key(tea.KeyCtrlT))
	assert.Equal(t, []store.Response{old}, m.snap.Responses)
	assert.Equal(t, "2 response(s) cleared for today", m.status)
}

func TestModel_ExportImport(t *testing.T) {
	rr := []store.Response{{Board: "foo.com", Timestamp: "2024-05-06 08:00:00"}, {Board: "dou.ua", Timestamp: "2024-05-05 08:00:00"}}
	m, e := newModel(t, rr...)

	m = send(m, key(tea.KeyCtrlE))
	assert.Equal(t, modeExport, m.mode)
	assert.Equal(t, filepath.Join(e.dir, "export.json"), m.pathInput.Value())
	m = send(m, key(tea.KeyEnter))
	assert.Equal(t, modeInput, m.mode)
	assert.Contains(t, m.status, "2 response(s) exported to")
	_, err := os.Stat(filepath.Join(e.dir, "export.json"))
	require.NoError(t, err)

	require.NoError(t, e.trk.Log.Replace(nil))
	m = send(m, key(tea.KeyCtrlO), key(tea.KeyEnter))
	assert.Equal(t, rr, m.snap.Responses)
	assert.Equal(t, "2 response(s) imported from "+filepath.Join(e.dir, "export.json")+", 2 new board(s)", m.status)

	m = send(m, key(tea.KeyCtrlO), key(tea.KeyEsc))
	assert.Equal(t, modeInput, m.mode)

	m = send(m, key(tea.KeyCtrlO))
	m.pathInput.SetValue(filepath.Join(e.dir, "nope.json"))
	m = send(m, key(tea.KeyEnter))
	assert.True(t, m.statusErr)
	assert.Equal(t, rr, m.snap.Responses, "failed import keeps data")
}

func TestModel_TabSwitchAndView(t *testing.T) {
	m, e := newModel(t, store.Response{Board: "hh.kz", Timestamp: "2024-05-06 08:00:00"},
		store.Response{Board: "dou.ua", Timestamp: "2024-05-01 08:00:00"})
	v := m.View()
	assert.Contains(t, v, "Recent Responses")
	assert.Contains(t, v, "hh.kz")
	assert.Contains(t, v, "1/4 today")

	// external change picked up on tab switch
	require.NoError(t, e.trk.Log.Append(store.Response{Board: "hh.kz", Timestamp: "2024-05-06 09:00:00"}))
	m = send(m, key(tea.KeyTab))
	v = m.View()
	assert.Contains(t, v, "Responses Today")
	assert.Contains(t, v, "2/4 today")
	assert.Equal(t, 2, m.snap.Summary[0].Today)

	m = send(m, key(tea.KeyTab))
	assert.Equal(t, tabRecent, m.tab)
}

func TestModel_Changes(t *testing.T) {
	dir := t.TempDir()
	trk := &tracker.Tracker{
		Log:    store.NewCSVLog(filepath.Join(dir, "responses.csv")),
		Boards: store.NewBoards(filepath.Join(dir, "boards.csv"), nil),
		Now:    func() time.Time { return now },
	}
	ch := make(chan time.Time, 1)
	m := New(Params{Tracker: trk, Feedback: feedback.New(nil, feedback.Params{}), Changes: ch})
	assert.Empty(t, m.snap.Responses)

	_, err := trk.Add("dou.ua")
	require.NoError(t, err)
	ch <- now
	msg := m.waitChange()()
	require.IsType(t, changedMsg{}, msg)

	res, cmd := m.Update(msg)
	m = res.(Model)
	assert.Len(t, m.snap.Responses, 1)
	assert.NotNil(t, cmd, "keeps waiting")

	close(ch)
	assert.Nil(t, m.waitChange()())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)
	res, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, res.(Model).View())
}

func TestModel_ErasedInputIgnoresSuggestion(t *testing.T) {
	m, e := newModel(t)
	m = typeText(m, "d")
	m = send(m, suggestMsg{seq: m.seq})
	require.NotEmpty(t, m.suggestions)
	m = send(m, key(tea.KeyDown))
	require.Equal(t, 0, m.suggCursor)

	m = send(m, key(tea.KeyBackspace))
	assert.Empty(t, m.input.Value())
	assert.Equal(t, -1, m.suggCursor, "highlight dropped on edit")
	assert.Empty(t, m.suggestions)

	m = send(m, key(tea.KeyEnter))
	assert.Empty(t, m.snap.Responses, "nothing added from empty input")
	assert.True(t, m.inputErr)
	require.Len(t, e.player.PlayCalls(), 1)
	assert.Equal(t, "err.mp3", e.player.PlayCalls()[0].File)
}

func TestModel_EditDropsHighlight(t *testing.T) {
	m, _ := newModel(t)
	m = typeText(m, "dj")
	m = send(m, suggestMsg{seq: m.seq}, key(tea.KeyDown), key(tea.KeyDown))
	require.Equal(t, 1, m.suggCursor)

	m = typeText(m, "i")
	assert.Equal(t, -1, m.suggCursor)
	m = send(m, key(tea.KeyEnter))
	require.Len(t, m.snap.Responses, 1)
	assert.Equal(t, "dji", m.snap.Responses[0].Board, "typed text used, not the stale highlight")
}
