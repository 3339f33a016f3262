package importjob

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"cooler-fleet-portal/internal/logger"
)

// Watcher triggers a batch import when new export files land in the drop
// directory. Vendor syncs copy several files in a row, so events are
// debounced: the import starts once the directory has been quiet for the
// settle interval.
type Watcher struct {
	dir    string
	mgr    *Manager
	settle time.Duration
}

func NewWatcher(dir string, mgr *Manager) *Watcher {
	return &Watcher{dir: dir, mgr: mgr, settle: 5 * time.Second}
}

func importable(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls", ".csv":
		return !strings.HasPrefix(filepath.Base(name), ".")
	}
	return false
}

// Run watches until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return err
	}

	logger.Info("watching drop directory", zap.String("dir", w.dir))

	var settle *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !importable(ev.Name) {
				continue
			}
			if settle == nil {
				settle = time.NewTimer(w.settle)
				fire = settle.C
			} else {
				settle.Reset(w.settle)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("drop directory watch error", zap.Error(err))
		case <-fire:
			settle = nil
			fire = nil
			if w.mgr.Start(true) {
				logger.Info("import triggered by drop directory change")
			}
		}
	}
}
