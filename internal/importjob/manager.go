package importjob

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"cooler-fleet-portal/internal/logger"
	"cooler-fleet-portal/internal/views"
	apperrors "cooler-fleet-portal/pkg/errors"
)

// State of the job manager. There is at most one batch import in flight;
// completed and error describe the most recent run. A canceled batch
// returns to idle.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateError     State = "error"
)

// Snapshot is a point-in-time copy of the manager state, safe to serialize.
// ProgressPercent and ElapsedSeconds are derived when the snapshot is taken.
type Snapshot struct {
	State           State      `json:"state"`
	CurrentFile     string     `json:"current_file,omitempty"`
	ProcessedCount  int        `json:"processed_count"`
	TotalCount      int        `json:"total_count"`
	ProgressPercent float64    `json:"progress_percent"`
	ElapsedSeconds  float64    `json:"elapsed_seconds"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	Summary         *Summary   `json:"summary,omitempty"`
	Error           string     `json:"error,omitempty"`
}

type task interface {
	run(ctx context.Context, m *Manager)
}

type importTask struct {
	refreshViews bool
}

type refreshTask struct{}

// BatchRunner runs one batch over the drop directory. The canceled func is
// polled between files; progress reports the file about to be imported and
// the batch-level counters. *Runner is the real implementation.
type BatchRunner interface {
	Run(ctx context.Context, canceled func() bool, progress func(file string, processed, total int)) (*Summary, error)
}

// Manager serializes batch imports: at most one runs at a time, started
// from the HTTP surface, the scheduler or the directory watcher. Work flows
// through a task queue drained by a single worker goroutine so callers
// never block on the import itself. Cancellation is cooperative: a flag is
// polled between files, so the file in progress always completes; the
// context is canceled only on Close (process shutdown).
type Manager struct {
	runner    BatchRunner
	refresher *views.Refresher

	tasks chan task

	mu       sync.Mutex
	snap     Snapshot
	canceled bool
	cancel   context.CancelFunc
	ctx      context.Context
	done     chan struct{}
}

func NewManager(runner BatchRunner, refresher *views.Refresher) *Manager {
	m := &Manager{
		runner:    runner,
		refresher: refresher,
		tasks:     make(chan task, 4),
		snap:      Snapshot{State: StateIdle},
	}
	go m.work()
	return m
}

func (m *Manager) work() {
	for t := range m.tasks {
		t.run(m.ctx, m)
	}
}

// Start launches a batch import over the drop directory. Returns false when
// one is already running.
func (m *Manager) Start(refreshViews bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.State == StateRunning {
		return false
	}

	now := time.Now().UTC()
	m.snap = Snapshot{State: StateRunning, StartedAt: &now}
	m.canceled = false
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.done = make(chan struct{})
	m.tasks <- importTask{refreshViews: refreshViews}
	return true
}

// Status returns a copy of the current state with the derived progress
// fields filled in.
func (m *Manager) Status() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snap
	if snap.StartedAt != nil {
		end := time.Now().UTC()
		if snap.FinishedAt != nil {
			end = *snap.FinishedAt
		}
		snap.ElapsedSeconds = end.Sub(*snap.StartedAt).Seconds()
	}
	if snap.TotalCount > 0 {
		snap.ProgressPercent = float64(snap.ProcessedCount) / float64(snap.TotalCount) * 100
	}
	return snap
}

// Cancel requests cooperative cancellation of the running batch. The file
// currently being imported finishes first; the batch then returns to idle.
// Returns false when nothing is running.
func (m *Manager) Cancel() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.State != StateRunning {
		return false
	}
	m.canceled = true
	return true
}

// Wait blocks until the running batch finishes or the timeout elapses, then
// returns the state. With no batch running it returns immediately.
func (m *Manager) Wait(timeout time.Duration) Snapshot {
	m.mu.Lock()
	done := m.done
	running := m.snap.State == StateRunning
	m.mu.Unlock()

	if running && done != nil {
		select {
		case <-done:
		case <-time.After(timeout):
		}
	}
	return m.Status()
}

// Close stops the worker goroutine. A running batch is aborted through its
// context, in-flight file included.
func (m *Manager) Close() {
	m.mu.Lock()
	m.canceled = true
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()
	close(m.tasks)
}

func (m *Manager) isCanceled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canceled
}

func (m *Manager) setProgress(file string, processed, total int) {
	m.mu.Lock()
	m.snap.CurrentFile = file
	m.snap.ProcessedCount = processed
	m.snap.TotalCount = total
	m.mu.Unlock()
}

func (m *Manager) finish(summary *Summary, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	m.snap.FinishedAt = &now
	m.snap.CurrentFile = ""
	m.snap.Summary = summary
	switch {
	case errors.Is(err, apperrors.ErrImportCanceled):
		m.snap.State = StateIdle
	case err != nil:
		m.snap.State = StateError
		m.snap.Error = err.Error()
	default:
		m.snap.State = StateCompleted
	}
	m.cancel()
	close(m.done)
}

func (t importTask) run(ctx context.Context, m *Manager) {
	logger.Info("batch import started", zap.Bool("refresh_views", t.refreshViews))

	summary, err := m.runner.Run(ctx, m.isCanceled, m.setProgress)
	if err == nil && t.refreshViews && summary.TouchedViews {
		refreshTask{}.run(ctx, m)
	}

	m.finish(summary, err)
	switch {
	case errors.Is(err, apperrors.ErrImportCanceled):
		logger.Info("batch import canceled")
	case err != nil:
		logger.Warn("batch import failed", zap.Error(err))
	default:
		logger.Info("batch import finished",
			zap.Int("succeeded", len(summary.Succeeded)),
			zap.Int("failed", len(summary.Failed)))
	}
}

func (t refreshTask) run(ctx context.Context, m *Manager) {
	m.refresher.RefreshAll(ctx)
}
