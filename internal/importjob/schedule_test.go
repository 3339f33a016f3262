package importjob

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cooler-fleet-portal/pkg/errors"
)

func newTestStore(t *testing.T) *ScheduleStore {
	t.Helper()
	return NewScheduleStore(filepath.Join(t.TempDir(), "schedule.json"))
}

func TestScheduleStoreDefaults(t *testing.T) {
	store := newTestStore(t)
	sched, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sched.Times)
	assert.True(t, sched.RefreshViews, "missing file defaults to refresh enabled")
}

func TestScheduleStoreAddRemove(t *testing.T) {
	store := newTestStore(t)

	sched, err := store.Add("06:30")
	require.NoError(t, err)
	assert.Equal(t, []string{"06:30"}, sched.Times)

	sched, err = store.Add("02:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"02:00", "06:30"}, sched.Times, "times stay sorted")

	// Duplicates are a no-op, not an error.
	sched, err = store.Add("06:30")
	require.NoError(t, err)
	assert.Equal(t, []string{"02:00", "06:30"}, sched.Times)

	sched, err = store.Remove("02:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"06:30"}, sched.Times)

	_, err = store.Remove("23:45")
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
}

func TestScheduleStoreRejectsInvalidTime(t *testing.T) {
	store := newTestStore(t)
	for _, bad := range []string{"25:00", "12:61", "noon", ""} {
		_, err := store.Add(bad)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSchedule, "time %q", bad)
	}
}

func TestScheduleStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")

	store := NewScheduleStore(path)
	_, err := store.Add("04:15")
	require.NoError(t, err)
	_, err = store.SetRefreshViews(false)
	require.NoError(t, err)

	reopened := NewScheduleStore(path)
	sched, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"04:15"}, sched.Times)
	assert.False(t, sched.RefreshViews)
}
