package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterSQL(t *testing.T, f StateFilter, now time.Time) (string, []any) {
	t.Helper()

	sql, args, err := applyFilter(selectBookings(), f, now).ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestApplyFilter(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all adds no predicate", func(t *testing.T) {
		sql, args := filterSQL(t, FilterAll, now)
		assert.NotContains(t, sql, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("current brackets now", func(t *testing.T) {
		sql, args := filterSQL(t, FilterCurrent, now)
		assert.Contains(t, sql, "b.start_time < $1")
		assert.Contains(t, sql, "b.end_time > $2")
		assert.Equal(t, []any{now, now}, args)
	})

	t.Run("past ends before now", func(t *testing.T) {
		sql, args := filterSQL(t, FilterPast, now)
		assert.Contains(t, sql, "b.end_time < $1")
		assert.NotContains(t, sql, "b.start_time <")
		assert.Equal(t, []any{now}, args)
	})

	t.Run("future starts after now", func(t *testing.T) {
		sql, args := filterSQL(t, FilterFuture, now)
		assert.Contains(t, sql, "b.start_time > $1")
		assert.NotContains(t, sql, "b.end_time")
		assert.Equal(t, []any{now}, args)
	})

	t.Run("status filters match exactly", func(t *testing.T) {
		for _, status := range []Status{StatusWaiting, StatusApproved, StatusRejected} {
			sql, args := filterSQL(t, ByStatus(status), now)
			assert.Contains(t, sql, "b.status = $1", status)
			assert.Equal(t, []any{status}, args)
			assert.NotContains(t, sql, "start_time <", status)
		}
	})
}

func TestListOrdering(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	sql, _, err := applyFilter(selectBookings(), FilterAll, now).
		OrderBy("b.start_time DESC").
		Limit(20).
		Offset(0).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY b.start_time DESC")
	assert.True(t, strings.Contains(sql, "LIMIT 20"))
}
