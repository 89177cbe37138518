package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobtrack/app/store"
)

func TestBuild(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 0, 0, 0, time.Local)
	rr := []store.Response{
		{Board: "dou.ua", Timestamp: "2024-05-10 09:00:00"},
		{Board: "indeed.com", Timestamp: "2024-05-09 23:59:59"},
		{Board: "dou.ua", Timestamp: "2024-05-01 09:00:00"},
		{Board: "hh.kz", Timestamp: "2024-05-10 00:00:00"},
		{Board: "dou.ua", Timestamp: "2024-05-10 23:59:59"},
		{Board: "indeed.com", Timestamp: "2024-05-11 00:00:00"},
	}

	rows, err := Build(rr, today)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Board: "dou.ua", Today: 2, Total: 3},
		{Board: "indeed.com", Today: 0, Total: 2},
		{Board: "hh.kz", Today: 1, Total: 1},
	}, rows)
	assert.Equal(t, 3, TodayTotal(rows))

	for _, row := range rows {
		cnt := 0
		for _, r := range rr {
			if r.Board == row.Board {
				cnt++
			}
		}
		assert.Equal(t, cnt, row.Total, row.Board)
		assert.LessOrEqual(t, row.Today, row.Total, row.Board)
	}
}

func TestBuild_SingleRecordScenario(t *testing.T) {
	rr := []store.Response{{Board: "indeed.com", Timestamp: "2024-01-01 10:00:00"}}

	rows, err := Build(rr, time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, []Row{{Board: "indeed.com", Today: 0, Total: 1}}, rows)

	rows, err = Build(rr, time.Date(2024, 1, 1, 23, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, []Row{{Board: "indeed.com", Today: 1, Total: 1}}, rows)
}

func TestBuild_Empty(t *testing.T) {
	rows, err := Build(nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, TodayTotal(rows))
}

func TestBuild_BadTimestamp(t *testing.T) {
	rr := []store.Response{
		{Board: "dou.ua", Timestamp: "2024-05-10 09:00:00"},
		{Board: "dou.ua", Timestamp: "10/05/2024"},
	}
	_, err := Build(rr, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10/05/2024")
}

func TestText(t *testing.T) {
	rows := []Row{{Board: "dou.ua", Today: 2, Total: 3}, {Board: "glassdoor.com/Job", Today: 0, Total: 12}}
	exp := "Job Board           Today   Total\n" +
		"dou.ua                  2       3\n" +
		"glassdoor.com/Job       0      12\n" +
		"all                     2      15\n"
	assert.Equal(t, exp, Text(rows))
}
