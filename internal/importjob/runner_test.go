package importjob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cooler-fleet-portal/internal/importer"
	"cooler-fleet-portal/internal/models"
	apperrors "cooler-fleet-portal/pkg/errors"
)

func newRunnerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func writeFixtureXLSX(t *testing.T, path string, headers []string, rows [][]string) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func TestRunnerListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"movements.xlsx", "users.csv", ".hidden.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv.d"), 0o755))

	r := NewRunner(nil, dir)
	files, err := r.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"movements.xlsx", "users.csv"}, files)
}

func TestRunnerBatchMixedOutcome(t *testing.T) {
	db := newRunnerTestDB(t)
	dir := t.TempDir()

	writeFixtureXLSX(t, filepath.Join(dir, "movements.xlsx"),
		[]string{"Id", "Movement Type", "Start Time"},
		[][]string{
			{"mv-1", "relocation", "01/01/2024 08:00:00"},
			{"mv-2", "shake", "01/01/2024 09:30:00"},
		},
	)
	// Unrecognizable filename: the batch logs it, keeps the file and moves on.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quarterly_report.csv"), []byte("a,b\n1,2\n"), 0o644))

	r := NewRunner(importer.NewImporter(db, importer.Options{}), dir)

	var seen []string
	var lastProcessed, lastTotal int
	summary, err := r.Run(context.Background(), nil, func(file string, processed, total int) {
		seen = append(seen, file)
		lastProcessed, lastTotal = processed, total
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"movements.xlsx"}, summary.Succeeded)
	assert.Equal(t, []string{"quarterly_report.csv"}, summary.Failed)
	assert.Equal(t, []string{"movements.xlsx", "quarterly_report.csv", ""}, seen)
	assert.Equal(t, 2, lastProcessed, "final progress call reports the whole batch")
	assert.Equal(t, 2, lastTotal)
	assert.True(t, summary.TouchedViews, "movements feed the materialized views")

	require.Len(t, summary.Results, 1)
	assert.Equal(t, 2, summary.Results[0].Inserted)

	_, err = os.Stat(filepath.Join(dir, "movements.xlsx"))
	assert.True(t, os.IsNotExist(err), "imported file must be deleted")
	_, err = os.Stat(filepath.Join(dir, "quarterly_report.csv"))
	assert.NoError(t, err, "failed file must be kept for inspection")
}

func TestRunnerCanceledBeforeStart(t *testing.T) {
	dir := t.TempDir()
	writeFixtureXLSX(t, filepath.Join(dir, "movements.xlsx"),
		[]string{"Id", "Start Time"},
		[][]string{{"mv-1", "01/01/2024 08:00:00"}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, dir)
	_, err := r.Run(ctx, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "movements.xlsx"))
	assert.NoError(t, statErr, "nothing imported, nothing deleted")
}

func TestRunnerCancelBetweenFiles(t *testing.T) {
	db := newRunnerTestDB(t)
	dir := t.TempDir()

	for _, name := range []string{"movements_a.xlsx", "movements_b.xlsx"} {
		writeFixtureXLSX(t, filepath.Join(dir, name),
			[]string{"Id", "Start Time"},
			[][]string{{"mv-" + name, "01/01/2024 08:00:00"}},
		)
	}

	r := NewRunner(importer.NewImporter(db, importer.Options{}), dir)

	// Cancellation lands while the first file is being imported: that file
	// still completes, the second is never started.
	filesStarted := 0
	canceled := func() bool { return filesStarted >= 1 }
	summary, err := r.Run(context.Background(),
		canceled,
		func(file string, processed, total int) { filesStarted++ },
	)
	assert.ErrorIs(t, err, apperrors.ErrImportCanceled)
	assert.Equal(t, []string{"movements_a.xlsx"}, summary.Succeeded)
	assert.Empty(t, summary.Failed)

	_, statErr := os.Stat(filepath.Join(dir, "movements_a.xlsx"))
	assert.True(t, os.IsNotExist(statErr), "completed file is deleted")
	_, statErr = os.Stat(filepath.Join(dir, "movements_b.xlsx"))
	assert.NoError(t, statErr, "file after the cancel point is untouched")

	var count int64
	require.NoError(t, db.Model(&models.Movement{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunnerEmptyDirectory(t *testing.T) {
	r := NewRunner(nil, t.TempDir())
	summary, err := r.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, summary.Succeeded)
	assert.Empty(t, summary.Failed)
	assert.False(t, summary.TouchedViews)
}
