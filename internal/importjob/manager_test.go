package importjob

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cooler-fleet-portal/pkg/errors"
)

// stubRunner blocks inside Run until released, so tests can observe the
// running state deterministically. Like the real runner it honors the
// canceled flag at a file boundary: here, after being released.
type stubRunner struct {
	release chan struct{}
	started chan struct{}
	summary *Summary
	err     error
}

func newStubRunner() *stubRunner {
	return &stubRunner{
		release: make(chan struct{}),
		started: make(chan struct{}, 8),
		summary: &Summary{Succeeded: []string{"users.xlsx"}},
	}
}

func (s *stubRunner) Run(ctx context.Context, canceled func() bool, progress func(file string, processed, total int)) (*Summary, error) {
	if progress != nil {
		progress("users.xlsx", 1, 2)
	}
	s.started <- struct{}{}
	select {
	case <-s.release:
	case <-ctx.Done():
		return s.summary, ctx.Err()
	}
	if canceled != nil && canceled() {
		return s.summary, apperrors.ErrImportCanceled
	}
	return s.summary, s.err
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for runner to start")
	}
}

func TestManagerSingleFlight(t *testing.T) {
	runner := newStubRunner()
	m := NewManager(runner, nil)
	defer m.Close()

	require.Equal(t, StateIdle, m.Status().State)
	require.True(t, m.Start(false))
	waitFor(t, runner.started)

	assert.False(t, m.Start(false), "second start while running must be refused")

	snap := m.Status()
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, "users.xlsx", snap.CurrentFile)
	assert.NotNil(t, snap.StartedAt)

	close(runner.release)
	snap = m.Wait(5 * time.Second)
	assert.Equal(t, StateCompleted, snap.State)
	assert.Empty(t, snap.CurrentFile)
	assert.NotNil(t, snap.FinishedAt)
	require.NotNil(t, snap.Summary)
	assert.Equal(t, []string{"users.xlsx"}, snap.Summary.Succeeded)

	// A finished manager accepts the next batch.
	runner.release = make(chan struct{})
	close(runner.release)
	assert.True(t, m.Start(false))
	assert.Equal(t, StateCompleted, m.Wait(5*time.Second).State)
}

func TestManagerProgressFields(t *testing.T) {
	runner := newStubRunner()
	m := NewManager(runner, nil)
	defer m.Close()

	require.True(t, m.Start(false))
	waitFor(t, runner.started)

	snap := m.Status()
	assert.Equal(t, 1, snap.ProcessedCount)
	assert.Equal(t, 2, snap.TotalCount)
	assert.InDelta(t, 50.0, snap.ProgressPercent, 0.01)
	assert.GreaterOrEqual(t, snap.ElapsedSeconds, 0.0)

	close(runner.release)
	snap = m.Wait(5 * time.Second)
	require.NotNil(t, snap.FinishedAt)
	assert.Equal(t, snap.FinishedAt.Sub(*snap.StartedAt).Seconds(), snap.ElapsedSeconds,
		"elapsed freezes once the batch is done")
}

func TestManagerRunError(t *testing.T) {
	runner := newStubRunner()
	runner.err = errors.New("drop directory unreadable")
	m := NewManager(runner, nil)
	defer m.Close()

	require.True(t, m.Start(false))
	waitFor(t, runner.started)
	close(runner.release)

	snap := m.Wait(5 * time.Second)
	assert.Equal(t, StateError, snap.State)
	assert.Contains(t, snap.Error, "drop directory unreadable")
}

func TestManagerCancelReturnsToIdle(t *testing.T) {
	runner := newStubRunner()
	m := NewManager(runner, nil)
	defer m.Close()

	assert.False(t, m.Cancel(), "cancel with nothing running must be refused")

	require.True(t, m.Start(true))
	waitFor(t, runner.started)
	require.True(t, m.Cancel())
	close(runner.release)

	snap := m.Wait(5 * time.Second)
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Error, "a canceled batch is not an error")
	assert.NotNil(t, snap.FinishedAt)

	// And the manager is ready for the next batch.
	runner.release = make(chan struct{})
	close(runner.release)
	assert.True(t, m.Start(false))
	assert.Equal(t, StateCompleted, m.Wait(5*time.Second).State)
}

func TestManagerWaitTimeout(t *testing.T) {
	runner := newStubRunner()
	m := NewManager(runner, nil)
	defer m.Close()

	require.True(t, m.Start(false))
	waitFor(t, runner.started)

	snap := m.Wait(50 * time.Millisecond)
	assert.Equal(t, StateRunning, snap.State)

	close(runner.release)
	assert.Equal(t, StateCompleted, m.Wait(5*time.Second).State)
}
