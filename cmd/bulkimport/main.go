package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"cooler-fleet-portal/internal/config"
	"cooler-fleet-portal/internal/database"
	"cooler-fleet-portal/internal/importer"
	"cooler-fleet-portal/internal/logger"
	"cooler-fleet-portal/internal/models"
	"cooler-fleet-portal/internal/views"
)

// bulkimport is the operator's one-shot loader: it imports every export
// file in the drop directory with a bounded worker pool, refreshes the
// reporting views once at the end, and exits non-zero when any file failed.
func main() {
	var (
		dir     = flag.String("dir", "", "directory with export files (default: IMPORT_DROP_DIR)")
		workers = flag.Int("workers", 0, "parallel file imports (default: IMPORT_WORKERS)")
		refresh = flag.Bool("refresh", true, "refresh materialized views after the run")
		keep    = flag.Bool("keep", false, "keep files after a successful import")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dir == "" {
		*dir = cfg.Import.DropDir
	}
	if *workers <= 0 {
		*workers = cfg.Import.Workers
	}
	if *workers <= 0 {
		*workers = 1
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := models.Migrate(db.DB); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	files, err := listFiles(*dir)
	if err != nil {
		logger.Fatal("Failed to read drop directory", zap.Error(err))
	}
	if len(files) == 0 {
		logger.Info("Nothing to import", zap.String("dir", *dir))
		return
	}

	imp := importer.NewImporter(db.DB, importer.Options{
		BatchSize:   cfg.Import.BatchSize,
		ForceUpsert: cfg.Import.MasterUpsert,
	})

	logger.Info("Bulk import starting",
		zap.String("dir", *dir),
		zap.Int("files", len(files)),
		zap.Int("workers", *workers))

	var (
		mu           sync.Mutex
		failed       []string
		touchedViews bool
	)
	sem := make(chan struct{}, *workers)
	var wg sync.WaitGroup
	for _, name := range files {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			path := filepath.Join(*dir, name)
			res, err := imp.ImportFile(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("file import failed", zap.String("file", name), zap.Error(err))
				failed = append(failed, name)
				return
			}
			if ent, ok := importer.EntityByName(res.Entity); ok && ent.TouchesViews {
				touchedViews = true
			}
			if !*keep {
				if err := os.Remove(path); err != nil {
					logger.Warn("could not delete imported file", zap.String("file", name), zap.Error(err))
				}
			}
		}(name)
	}
	wg.Wait()

	if *refresh && touchedViews && ctx.Err() == nil {
		views.NewRefresher(db.DB).RefreshAll(ctx)
	}

	logger.Info("Bulk import finished",
		zap.Int("succeeded", len(files)-len(failed)),
		zap.Int("failed", len(failed)))
	if len(failed) > 0 {
		os.Exit(1)
	}
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
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
