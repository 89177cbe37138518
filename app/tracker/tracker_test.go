package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobtrack/app/store"
	"github.com/umputun/jobtrack/app/summary"
	"github.com/umputun/jobtrack/app/tracker/mocks"
)

func newTracker(t *testing.T, now time.Time) (*Tracker, string) {
	t.Helper()
	dir := t.TempDir()
	return &Tracker{
		Log:    store.NewCSVLog(filepath.Join(dir, "responses.csv")),
		Boards: store.NewBoards(filepath.Join(dir, "custom_job_boards.csv"), nil),
		Now:    func() time.Time { return now },
	}, dir
}

func TestTracker_EmptyStoreScenario(t *testing.T) {
	trk, _ := newTracker(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local))

	snap, err := trk.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Responses)
	assert.Empty(t, snap.Summary)

	r, err := trk.Add("indeed.com")
	require.NoError(t, err)
	assert.Equal(t, store.Response{Board: "indeed.com", Timestamp: "2024-01-01 10:00:00"}, r)

	trk.Now = func() time.Time { return time.Date(2024, 1, 5, 9, 0, 0, 0, time.Local) }
	snap, err = trk.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []store.Response{r}, snap.Responses)
	assert.Equal(t, []summary.Row{{Board: "indeed.com", Today: 0, Total: 1}}, snap.Summary)
}

func TestTracker_AddEmpty(t *testing.T) {
	trk, _ := newTracker(t, time.Now())
	for _, b := range []string{"", "   ", "\t"} {
		_, err := trk.Add(b)
		assert.ErrorIs(t, err, ErrEmptyBoard)
	}
	r, err := trk.Add("  dou.ua ")
	require.NoError(t, err)
	assert.Equal(t, "dou.ua", r.Board)
}

func TestTracker_DeleteAndClear(t *testing.T) {
	now := time.Date(2024, 3, 3, 12, 0, 0, 0, time.Local)
	trk, _ := newTracker(t, now)
	old := store.Response{Board: "dou.ua", Timestamp: "2024-03-02 12:00:00"}
	dup := store.Response{Board: "hh.kz", Timestamp: "2024-03-03 08:00:00"}
	require.NoError(t, trk.Log.Replace([]store.Response{old, dup, dup, {Board: "djinni.co", Timestamp: "2024-03-03 09:00:00"}}))

	require.NoError(t, trk.Delete(1, dup))
	snap, err := trk.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Responses, 3)
	assert.Equal(t, []summary.Row{{Board: "dou.ua", Today: 0, Total: 1},
		{Board: "hh.kz", Today: 1, Total: 1}, {Board: "djinni.co", Today: 1, Total: 1}}, snap.Summary)

	err = trk.Delete(0, dup)
	assert.ErrorIs(t, err, store.ErrStale)

	n, err := trk.ClearToday()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	snap, err = trk.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []store.Response{old}, snap.Responses)

	n, err = trk.DeleteMatching(old)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTracker_DeleteMatchingDuplicates(t *testing.T) {
	trk, _ := newTracker(t, time.Now())
	dup := store.Response{Board: "hh.kz", Timestamp: "2024-03-03 08:00:00"}
	require.NoError(t, trk.Log.Replace([]store.Response{dup, dup}))

	n, err := trk.DeleteMatching(dup)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "single call removes both identical records")
}

func TestTracker_ExportImportRoundTrip(t *testing.T) {
	trk, dir := newTracker(t, time.Now())
	rr := []store.Response{
		{Board: "dou.ua", Timestamp: "2024-03-02 12:00:00"},
		{Board: "foo.com", Timestamp: "2024-03-03 08:00:00"},
		{Board: "dou.ua", Timestamp: "2024-03-02 12:00:00"},
	}
	require.NoError(t, trk.Log.Replace(rr))

	file := filepath.Join(dir, "export.json")
	n, err := trk.Export(file)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, trk.Log.Replace(nil))
	res, err := trk.Import(file)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Records)
	assert.Equal(t, []string{"dou.ua", "foo.com"}, res.AddedBoards)

	loaded, err := trk.Log.Load()
	require.NoError(t, err)
	sortResponses(loaded)
	sortResponses(rr)
	assert.Equal(t, rr, loaded)
}

func TestTracker_ImportMergesBoardsOnce(t *testing.T) {
	trk, dir := newTracker(t, time.Now())
	file := filepath.Join(dir, "import.json")
	data := `[{"Job Board":"foo.com","Timestamp":"2024-01-01 10:00:00"}]`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))
	require.NoError(t, trk.Log.Replace([]store.Response{{Board: "old", Timestamp: "2020-01-01 00:00:00"}}))

	for i := 0; i < 2; i++ {
		_, err := trk.Import(file)
		require.NoError(t, err)
	}

	custom, err := trk.Boards.(*store.Boards).Custom()
	require.NoError(t, err)
	assert.Equal(t, []string{"foo.com"}, custom)

	rr, err := trk.Log.Load()
	require.NoError(t, err)
	assert.Equal(t, []store.Response{{Board: "foo.com", Timestamp: "2024-01-01 10:00:00"}}, rr, "log replaced")

	sugg, err := trk.Suggest("FO")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo.com"}, sugg)
}

func TestTracker_ImportBadFileKeepsLog(t *testing.T) {
	logMock := &mocks.ResponseLogMock{}
	boards := &mocks.BoardListMock{}
	trk := Tracker{Log: logMock, Boards: boards}

	for _, data := range []string{`[{"Job Board":"foo.com"}]`, `[{"Job Board":"foo.com","Timestamp":"2024-01-01 10:00:00"}] {"x"`} {
		file := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(file, []byte(data), 0o600))
		_, err := trk.Import(file)
		require.Error(t, err, data)
	}
	assert.Empty(t, logMock.ReplaceCalls())
	assert.Empty(t, boards.MergeCalls())
}

func TestTracker_Errors(t *testing.T) {
	errStore := errors.New("disk is gone")
	logMock := &mocks.ResponseLogMock{
		LoadFunc:           func() ([]store.Response, error) { return nil, errStore },
		AppendFunc:         func(store.Response) error { return errStore },
		DeleteAtFunc:       func(int, store.Response) error { return errStore },
		DeleteMatchingFunc: func(store.Response) (int, error) { return 0, errStore },
		ClearFunc:          func(string) (int, error) { return 0, errStore },
	}
	boards := &mocks.BoardListMock{ListFunc: func() ([]string, error) { return nil, errStore }}
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	trk := Tracker{Log: logMock, Boards: boards, Now: func() time.Time { return now }}

	_, err := trk.Add("dou.ua")
	assert.ErrorIs(t, err, errStore)
	_, err = trk.Snapshot()
	assert.ErrorIs(t, err, errStore)
	assert.ErrorIs(t, trk.Delete(0, store.Response{}), errStore)
	_, err = trk.DeleteMatching(store.Response{})
	assert.ErrorIs(t, err, errStore)
	_, err = trk.ClearToday()
	assert.ErrorIs(t, err, errStore)
	_, err = trk.Export(filepath.Join(t.TempDir(), "x.json"))
	assert.ErrorIs(t, err, errStore)
	_, err = trk.Suggest("d")
	assert.ErrorIs(t, err, errStore)

	require.Len(t, logMock.ClearCalls(), 1)
	assert.Equal(t, "2024-07-01", logMock.ClearCalls()[0].DatePrefix)
}

func TestTracker_SnapshotBadTimestamp(t *testing.T) {
	logMock := &mocks.ResponseLogMock{LoadFunc: func() ([]store.Response, error) {
		return []store.Response{{Board: "dou.ua", Timestamp: "yesterday"}}, nil
	}}
	trk := Tracker{Log: logMock}
	_, err := trk.Snapshot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't build summary")
}

func sortResponses(rr []store.Response) {
	sort.Slice(rr, func(i, j int) bool {
		if rr[i].Board != rr[j].Board {
			return rr[i].Board < rr[j].Board
		}
		return rr[i].Timestamp < rr[j].Timestamp
	})
}
