package importjob

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"cooler-fleet-portal/internal/logger"
	apperrors "cooler-fleet-portal/pkg/errors"
)

// Schedule is the on-disk auto-import configuration: wall-clock times at
// which a batch import fires, and whether the views are refreshed after.
type Schedule struct {
	Times        []string `json:"schedules"`
	RefreshViews bool     `json:"refresh_views"`
}

// ScheduleStore persists the schedule as a JSON file next to the service.
type ScheduleStore struct {
	path string
	mu   sync.Mutex
}

func NewScheduleStore(path string) *ScheduleStore {
	return &ScheduleStore{path: path}
}

// Load reads the schedule. A missing file is an empty schedule with view
// refresh enabled, not an error.
func (s *ScheduleStore) Load() (*Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ScheduleStore) load() (*Schedule, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Schedule{RefreshViews: true}, nil
	}
	if err != nil {
		return nil, err
	}
	var sched Schedule
	if err := json.Unmarshal(raw, &sched); err != nil {
		return nil, fmt.Errorf("parse schedule file: %w", err)
	}
	return &sched, nil
}

func (s *ScheduleStore) save(sched *Schedule) error {
	raw, err := json.MarshalIndent(sched, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Add registers a new HH:MM time. Duplicates are ignored.
func (s *ScheduleStore) Add(t string) (*Schedule, error) {
	if _, err := time.Parse("15:04", t); err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSchedule, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sched, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, existing := range sched.Times {
		if existing == t {
			return sched, nil
		}
	}
	sched.Times = append(sched.Times, t)
	sort.Strings(sched.Times)
	if err := s.save(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Remove deletes an HH:MM time from the schedule.
func (s *ScheduleStore) Remove(t string) (*Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sched, err := s.load()
	if err != nil {
		return nil, err
	}
	kept := sched.Times[:0]
	found := false
	for _, existing := range sched.Times {
		if existing == t {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrScheduleNotFound, t)
	}
	sched.Times = kept
	if err := s.save(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// SetRefreshViews toggles the post-import view refresh.
func (s *ScheduleStore) SetRefreshViews(enabled bool) (*Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sched, err := s.load()
	if err != nil {
		return nil, err
	}
	sched.RefreshViews = enabled
	if err := s.save(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Daemon fires batch imports at the scheduled wall-clock times. The
// schedule file is re-read every cycle, so edits through the API take
// effect without a restart.
type Daemon struct {
	store *ScheduleStore
	mgr   *Manager
}

func NewDaemon(store *ScheduleStore, mgr *Manager) *Daemon {
	return &Daemon{store: store, mgr: mgr}
}

// Run polls once per minute until the context is canceled. Each scheduled
// time fires at most once per day; a batch already running at the
// scheduled minute is counted as that day's run.
func (d *Daemon) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	lastFired := ""
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sched, err := d.store.Load()
			if err != nil {
				logger.Warn("could not load schedule", zap.Error(err))
				continue
			}
			hhmm := now.Format("15:04")
			stamp := now.Format("2006-01-02") + " " + hhmm
			if !containsTime(sched.Times, hhmm) || stamp == lastFired {
				continue
			}
			lastFired = stamp
			if d.mgr.Start(sched.RefreshViews) {
				logger.Info("scheduled import started", zap.String("time", hhmm))
			} else {
				logger.Warn("scheduled import skipped, one already running",
					zap.String("time", hhmm))
			}
		}
	}
}

func containsTime(times []string, t string) bool {
	for _, x := range times {
		if x == t {
			return true
		}
	}
	return false
}
