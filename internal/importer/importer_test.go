package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/glebarez/sqlite"

	"cooler-fleet-portal/internal/models"
	apperrors "cooler-fleet-portal/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func writeXLSX(t *testing.T, path string, headers []string, rows [][]string) {
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

func writeUTF16CSV(t *testing.T, path string, lines []string) {
	t.Helper()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.String(strings.Join(lines, "\r\n"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
}

func TestImportOutletInsertUpdateDrop(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{ForceUpsert: true})

	first := filepath.Join(dir, "outlets_seed.xlsx")
	writeXLSX(t, first,
		[]string{"Name", "Code", "City"},
		[][]string{{"Corner Shop", "OUT-1", "Fortaleza"}},
	)
	res, err := imp.ImportFile(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	second := filepath.Join(dir, "outlets_delta.xlsx")
	writeXLSX(t, second,
		[]string{"Name", "Code", "City"},
		[][]string{
			{"Corner Shop Renamed", "OUT-1", ""},
			{"New Shop", "OUT-2", "Recife"},
			{"No Key", "", "Natal"},
		},
	)
	res, err = imp.ImportFile(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Read)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Dropped)

	var out models.Outlet
	require.NoError(t, db.First(&out, "code = ?", "OUT-1").Error)
	require.NotNil(t, out.Name)
	assert.Equal(t, "Corner Shop Renamed", *out.Name)
	// The blank city in the delta must not null out the stored value.
	require.NotNil(t, out.City)
	assert.Equal(t, "Fortaleza", *out.City)

	var count int64
	require.NoError(t, db.Model(&models.Outlet{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestMasterDataIsInsertOnlyByDefault(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	path := filepath.Join(dir, "outlets.xlsx")
	writeXLSX(t, path,
		[]string{"Name", "Code"},
		[][]string{{"Original", "OUT-9"}},
	)
	_, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)

	writeXLSX(t, path,
		[]string{"Name", "Code"},
		[][]string{{"Should Not Apply", "OUT-9"}},
	)
	res, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 0, res.Updated)

	var out models.Outlet
	require.NoError(t, db.First(&out, "code = ?", "OUT-9").Error)
	assert.Equal(t, "Original", *out.Name)
}

func TestImportMovementIdempotent(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	path := filepath.Join(dir, "movements.xlsx")
	writeXLSX(t, path,
		[]string{"Id", "Movement Type", "Start Time", "Duration"},
		[][]string{
			{"mv-1", "relocation", "31/12/2023 23:59:59 BRST", "12.5"},
			{"mv-2", "shake", "01/01/2024 08:00:00", "3"},
		},
	)

	res, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 0, res.Updated)

	// Vendor re-sends the same export: row count must not change.
	writeXLSX(t, path,
		[]string{"Id", "Movement Type", "Start Time", "Duration"},
		[][]string{
			{"mv-1", "relocation", "31/12/2023 23:59:59 BRST", "12.5"},
			{"mv-2", "shake", "01/01/2024 08:00:00", "3"},
		},
	)
	res, err = imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 2, res.Updated)

	var count int64
	require.NoError(t, db.Model(&models.Movement{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var mv models.Movement
	require.NoError(t, db.First(&mv, "id = ?", "mv-1").Error)
	require.NotNil(t, mv.StartTime)
	want := time.Date(2024, 1, 1, 2, 59, 59, 0, time.UTC)
	assert.True(t, mv.StartTime.UTC().Equal(want), "got %v", mv.StartTime.UTC())
}

func TestMovementWithoutStartTimeIsDropped(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	path := filepath.Join(dir, "movements.xlsx")
	writeXLSX(t, path,
		[]string{"Id", "Start Time"},
		[][]string{
			{"mv-ok", "01/01/2024 10:00:00"},
			{"mv-no-start", ""},
			{"mv-bad-start", "not a date"},
		},
	)
	res, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Read)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 2, res.Dropped)
}

func TestKeyNormalizationAndDedup(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	// Spreadsheet tools render numeric ids as floats; both spellings must
	// address the same row, last one winning.
	path := filepath.Join(dir, "assets.xlsx")
	writeXLSX(t, path,
		[]string{"OEM Serial Number", "Asset Type"},
		[][]string{
			{"12345.0", "cooler"},
			{"12345", "freezer"},
		},
	)
	res, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	var asset models.Asset
	require.NoError(t, db.First(&asset, "oem_serial_number = ?", "12345").Error)
	assert.Equal(t, "freezer", *asset.AssetType)
}

func TestMissingKeyColumnAborts(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	path := filepath.Join(dir, "outlets.xlsx")
	writeXLSX(t, path,
		[]string{"Name", "City"},
		[][]string{{"Shop", "Recife"}},
	)
	_, err := imp.ImportFile(context.Background(), path)
	require.ErrorIs(t, err, apperrors.ErrKeyColumnMissing)
}

func TestUnrecognizedFilename(t *testing.T) {
	db := newTestDB(t)
	imp := NewImporter(db, Options{})
	_, err := imp.ImportFile(context.Background(), "quarterly_report.xlsx")
	require.ErrorIs(t, err, apperrors.ErrUnrecognizedFile)
}

func TestSubClientSynthesizedID(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	path := filepath.Join(dir, "subclients.csv")
	writeUTF16CSV(t, path, []string{
		"SubClient Name,SubClient Code,Client",
		"North Division,ND,acme",
	})
	res, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	var sc models.SubClient
	require.NoError(t, db.First(&sc, "id = ?", "ND_acme").Error)
	assert.Equal(t, "North Division", *sc.SubclientName)
}

func TestValueCoercion(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	path := filepath.Join(dir, "users.xlsx")
	writeXLSX(t, path,
		[]string{"UPN", "Is Active?", "Reward Point", "Last Login On"},
		[][]string{
			{"alice@acme.com", "Yes", "10.5", "05/04/2023 09:30:00"},
			{"bob@acme.com", "No", "not-a-number", "N/A"},
			{"carol@acme.com", "maybe", "", "nan"},
		},
	)
	res, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Inserted)

	var alice, bob, carol models.User
	require.NoError(t, db.First(&alice, "upn = ?", "alice@acme.com").Error)
	require.NoError(t, db.First(&bob, "upn = ?", "bob@acme.com").Error)
	require.NoError(t, db.First(&carol, "upn = ?", "carol@acme.com").Error)

	assert.True(t, *alice.IsActive)
	assert.Equal(t, 10.5, *alice.RewardPoint)
	require.NotNil(t, alice.LastLoginOn)
	// Ambiguous 05/04 parses day-first: April 5th in Sao Paulo.
	assert.Equal(t, time.April, alice.LastLoginOn.UTC().Month())

	assert.False(t, *bob.IsActive)
	assert.Nil(t, bob.RewardPoint)
	assert.Nil(t, bob.LastLoginOn)

	// Anything that is not "yes" coerces to false.
	assert.False(t, *carol.IsActive)
	assert.Nil(t, carol.RewardPoint)
	assert.Nil(t, carol.LastLoginOn)
}

func TestUploadStyleImportAs(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	imp := NewImporter(db, Options{})

	// Filename gives no hint; the caller forces the entity.
	path := filepath.Join(dir, "export.xlsx")
	writeXLSX(t, path,
		[]string{"Name", "Code"},
		[][]string{{"Forced", "OUT-F"}},
	)
	ent, ok := EntityByName("Outlet")
	require.True(t, ok)
	res, err := imp.ImportFileAs(context.Background(), ent, path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
}
