package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteLog(t *testing.T) *SQLiteLog {
	t.Helper()
	s, err := NewSQLiteLog(filepath.Join(t.TempDir(), "responses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewSQLiteLog(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		s := newSQLiteLog(t)
		rr, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, rr)

		var count int
		err = s.db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='responses'")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("invalid path", func(t *testing.T) {
		s, err := NewSQLiteLog("/invalid/path/that/does/not/exist/test.db")
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestSQLiteLog_Operations(t *testing.T) {
	s := newSQLiteLog(t)
	dup := Response{Board: "indeed.com", Timestamp: "2024-01-01 10:00:00"}
	other := Response{Board: "dou.ua", Timestamp: "2024-01-02 10:00:00"}

	for _, r := range []Response{dup, other, dup, dup} {
		require.NoError(t, s.Append(r))
	}
	rr, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []Response{dup, other, dup, dup}, rr)

	require.NoError(t, s.DeleteAt(2, dup))
	rr, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, []Response{dup, other, dup}, rr)

	assert.ErrorIs(t, s.DeleteAt(1, dup), ErrStale)
	assert.ErrorIs(t, s.DeleteAt(10, dup), ErrStale)

	n, err := s.DeleteMatching(dup)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	rr, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, []Response{other}, rr)
}

func TestSQLiteLog_ClearAndReplace(t *testing.T) {
	s := newSQLiteLog(t)
	require.NoError(t, s.Replace([]Response{
		{"a", "2024-01-01 10:00:00"},
		{"b", "2024-01-02 10:00:00"},
		{"c", "2024-01-01 23:59:59"},
		{"d", "x2024-01-01 10:00:00"},
		{"e", "2024-01%01 10:00:00"},
	}))

	n, err := s.Clear("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rr, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []Response{{"b", "2024-01-02 10:00:00"}, {"d", "x2024-01-01 10:00:00"}, {"e", "2024-01%01 10:00:00"}}, rr)

	require.NoError(t, s.Replace([]Response{{"z", "2025-01-01 00:00:00"}}))
	rr, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, []Response{{"z", "2025-01-01 00:00:00"}}, rr)
	assert.Contains(t, s.String(), "sqlite:")
}

func TestSQLiteLog_ClearNonASCIIPrefix(t *testing.T) {
	rr := []Response{
		{Board: "a", Timestamp: "день 2024-01-01"},
		{Board: "b", Timestamp: "день 2024-01-02"},
		{Board: "c", Timestamp: "ночь 2024-01-01"},
	}
	s := newSQLiteLog(t)
	require.NoError(t, s.Replace(rr))
	c := NewCSVLog(filepath.Join(t.TempDir(), "responses.csv"))
	require.NoError(t, c.Replace(rr))

	for _, prefix := range []string{"день", "день 2024-01-01", "ночь 2"} {
		sn, err := s.Clear(prefix)
		require.NoError(t, err)
		cn, err := c.Clear(prefix)
		require.NoError(t, err)
		assert.Equal(t, cn, sn, prefix)

		srr, err := s.Load()
		require.NoError(t, err)
		crr, err := c.Load()
		require.NoError(t, err)
		assert.Equal(t, crr, srr, prefix)
		require.NoError(t, s.Replace(rr))
		require.NoError(t, c.Replace(rr))
	}
}
