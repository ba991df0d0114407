package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want TaskStatus
	}{
		{"todo", TaskTodo},
		{"Backlog", TaskTodo},
		{"in-progress", TaskInProgress},
		{"DOING", TaskInProgress},
		{"  waiting ", TaskBlocked},
		{"completed", TaskDone},
		{"closed", TaskDone},
		{"garbage", TaskTodo},
		{"", TaskTodo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeStatus(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, PriorityUrgent, NormalizePriority("critical"))
	assert.Equal(t, PriorityMedium, NormalizePriority("normal"))
	assert.Equal(t, PriorityMedium, NormalizePriority("???"))
	assert.Equal(t, PriorityLow, NormalizePriority("Trivial"))
}

func TestParseTime_AcceptedLayouts(t *testing.T) {
	cases := []string{
		"2025-06-15T10:00:00Z",
		"2025-06-15T10:00:00",
		"2025-06-15 10:00:00",
		"2025-06-15",
	}
	for _, raw := range cases {
		parsed := ParseTime(raw)
		require.NotNil(t, parsed, "raw=%q", raw)
		assert.Equal(t, 2025, parsed.Year())
		assert.Equal(t, time.June, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
	}
}

func TestParseTime_MalformedIsAbsent(t *testing.T) {
	assert.Nil(t, ParseTime(""))
	assert.Nil(t, ParseTime("not-a-date"))
	assert.Nil(t, ParseTime("15/06/2025"))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
