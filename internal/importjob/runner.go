package importjob

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"cooler-fleet-portal/internal/importer"
	"cooler-fleet-portal/internal/logger"
	apperrors "cooler-fleet-portal/pkg/errors"
)

// Summary is the outcome of one batch run over the drop directory.
type Summary struct {
	Succeeded []string           `json:"succeeded"`
	Failed    []string           `json:"failed"`
	Results   []*importer.Result `json:"results"`
	// TouchedViews is set when at least one imported entity feeds the
	// materialized views.
	TouchedViews bool `json:"-"`
}

// Runner imports every recognizable file in the drop directory.
type Runner struct {
	imp *importer.Importer
	dir string
}

func NewRunner(imp *importer.Importer, dir string) *Runner {
	return &Runner{imp: imp, dir: dir}
}

// ListFiles returns the importable files in the drop directory, sorted by
// name. Only xlsx and csv files count; dotfiles are skipped.
func (r *Runner) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".xlsx", ".xls", ".csv":
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run imports the drop directory one file at a time. A failed file is
// logged and skipped, never aborting the batch; successfully imported files
// are deleted so the next run starts clean. The canceled flag is polled
// only between files, so the file in progress when Cancel lands still
// completes; the context aborts mid-file and is reserved for shutdown.
func (r *Runner) Run(ctx context.Context, canceled func() bool, progress func(file string, processed, total int)) (*Summary, error) {
	files, err := r.ListFiles()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	total := len(files)
	for i, name := range files {
		if canceled != nil && canceled() {
			return summary, apperrors.ErrImportCanceled
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if progress != nil {
			progress(name, i, total)
		}

		path := filepath.Join(r.dir, name)
		res, err := r.imp.ImportFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			logger.Warn("file import failed",
				zap.String("file", name),
				zap.Error(err))
			summary.Failed = append(summary.Failed, name)
			continue
		}

		summary.Succeeded = append(summary.Succeeded, name)
		summary.Results = append(summary.Results, res)
		if ent, ok := importer.EntityByName(res.Entity); ok && ent.TouchesViews {
			summary.TouchedViews = true
		}
		if err := os.Remove(path); err != nil {
			logger.Warn("could not delete imported file",
				zap.String("file", name),
				zap.Error(err))
		}
	}
	if progress != nil {
		progress("", total, total)
	}
	return summary, nil
}
