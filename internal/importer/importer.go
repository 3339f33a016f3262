package importer

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cooler-fleet-portal/internal/logger"
	apperrors "cooler-fleet-portal/pkg/errors"
)

const defaultBatchSize = 500

// Options tunes the import pipeline.
type Options struct {
	// BatchSize is the number of rows per bulk insert statement.
	BatchSize int
	// ForceUpsert lets master-data imports update existing rows. Off by
	// default: a stale vendor export must not clobber rows enriched
	// through the portal.
	ForceUpsert bool
}

// Importer loads vendor export files into the database.
type Importer struct {
	db   *gorm.DB
	opts Options
}

func NewImporter(db *gorm.DB, opts Options) *Importer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	return &Importer{db: db, opts: opts}
}

// ImportFile detects the entity from the filename, loads the file and
// applies it to the database in a single transaction. Row-level problems
// (bad cells, missing keys) drop values or rows; only file-level problems
// (unrecognized name, unreadable file, missing key column, failed write)
// surface as errors.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	ent, ok := DetectEntity(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnrecognizedFile, filepath.Base(path))
	}
	return im.ImportFileAs(ctx, ent, path)
}

// ImportFileAs imports a file as a specific entity, bypassing filename
// detection.
func (im *Importer) ImportFileAs(ctx context.Context, ent *Entity, path string) (*Result, error) {
	frame, err := LoadFile(path, ent.Knows)
	if err != nil {
		return nil, err
	}

	if ent.Finalize == nil && !hasKeyHeader(ent, frame.Headers) {
		return nil, fmt.Errorf("%w: %s needs %s", apperrors.ErrKeyColumnMissing, ent.Name, ent.KeyCol)
	}

	res := &Result{Entity: ent.Name, File: filepath.Base(path)}
	rows := im.coerceRows(ent, frame, res)
	keys, byKey := dedupRows(ent, rows)

	existing, err := im.existingKeys(ctx, ent, keys)
	if err != nil {
		return nil, fmt.Errorf("query existing %s keys: %w", ent.Table, err)
	}

	var inserts []map[string]interface{}
	var updates []map[string]interface{}
	for _, k := range keys {
		if existing[k] {
			updates = append(updates, byKey[k])
		} else {
			inserts = append(inserts, byKey[k])
		}
	}
	alignColumns(inserts)

	upsert := ent.Mode == ModeUpsert || im.opts.ForceUpsert

	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, chunk := range chunkRows(inserts, im.opts.BatchSize) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := tx.Table(ent.Table).Create(chunk).Error; err != nil {
				return err
			}
			res.Inserted += len(chunk)
		}
		if !upsert {
			return nil
		}
		for _, row := range updates {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial := updatePayload(ent, row)
			if len(partial) == 0 {
				continue
			}
			q := tx.Table(ent.Table).Where(ent.KeyCol+" = ?", row[ent.KeyCol])
			if err := q.Updates(partial).Error; err != nil {
				return err
			}
			res.Updated++
		}
		return nil
	})
	if err != nil {
		res.Inserted = 0
		res.Updated = 0
		return nil, err
	}

	logger.Info("file imported",
		zap.String("file", res.File),
		zap.String("entity", res.Entity),
		zap.Int("read", res.Read),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("dropped", res.Dropped))
	return res, nil
}

func hasKeyHeader(ent *Entity, headers []string) bool {
	for _, h := range headers {
		if c, ok := ent.Lookup(h); ok && c.Name == ent.KeyCol {
			return true
		}
	}
	return false
}

// coerceRows renames vendor headers to column names and coerces cell values.
// Unmapped headers are dropped, null tokens and uncoercible cells become
// absent columns, rows without a usable key or a mandatory value are counted
// as dropped.
func (im *Importer) coerceRows(ent *Entity, frame *Frame, res *Result) []map[string]interface{} {
	var out []map[string]interface{}
rows:
	for _, rec := range frame.Records() {
		res.Read++
		row := make(map[string]interface{}, len(rec))
		for header, raw := range rec {
			c, ok := ent.Lookup(header)
			if !ok || IsNull(raw) {
				continue
			}
			if v, ok := coerceValue(c.Kind, raw); ok {
				row[c.Name] = v
			}
		}
		if ent.Finalize != nil {
			ent.Finalize(row)
		}

		key, ok := row[ent.KeyCol]
		if !ok {
			res.Dropped++
			continue
		}
		row[ent.KeyCol] = normalizeKey(key)

		for _, m := range ent.Mandatory {
			if _, ok := row[m]; !ok {
				res.Dropped++
				continue rows
			}
		}
		out = append(out, row)
	}
	return out
}

func coerceValue(kind Kind, raw string) (interface{}, bool) {
	s := strings.TrimSpace(raw)
	switch kind {
	case KindTime:
		t := ParseTimestamp(s)
		if t == nil {
			return nil, false
		}
		return *t, true
	case KindBool:
		return strings.EqualFold(s, "yes"), true
	case KindInt:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			return int64(f), true
		}
		return nil, false
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		return s, true
	}
}

// normalizeKey renders whole-number keys without a decimal point.
// Spreadsheet tools turn numeric ids into floats, so "12345.0" and "12345"
// must address the same row. Keys without a decimal point pass through
// untouched to preserve leading zeros.
func normalizeKey(v interface{}) string {
	s := strings.TrimSpace(fmt.Sprint(v))
	if !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1e15 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

// dedupRows keeps the last row per key, preserving first-seen order.
func dedupRows(ent *Entity, rows []map[string]interface{}) ([]string, map[string]map[string]interface{}) {
	var order []string
	byKey := make(map[string]map[string]interface{}, len(rows))
	for _, row := range rows {
		k := row[ent.KeyCol].(string)
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = row
	}
	return order, byKey
}

func (im *Importer) existingKeys(ctx context.Context, ent *Entity, keys []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(keys))
	for _, chunk := range chunkKeys(keys, im.opts.BatchSize) {
		var got []string
		err := im.db.WithContext(ctx).
			Table(ent.Table).
			Where(ent.KeyCol+" IN ?", chunk).
			Pluck(ent.KeyCol, &got).Error
		if err != nil {
			return nil, err
		}
		for _, k := range got {
			existing[k] = true
		}
	}
	return existing, nil
}

// alignColumns gives every insert row the same column set, filling gaps with
// nulls so batched inserts share one statement shape.
func alignColumns(rows []map[string]interface{}) {
	if len(rows) == 0 {
		return
	}
	all := map[string]struct{}{}
	for _, r := range rows {
		for k := range r {
			all[k] = struct{}{}
		}
	}
	for _, r := range rows {
		for k := range all {
			if _, ok := r[k]; !ok {
				r[k] = nil
			}
		}
	}
}

// updatePayload strips the key, created_on and absent columns from an
// update: imports never null out a value an earlier import wrote, and the
// original creation stamp survives re-imports.
func updatePayload(ent *Entity, row map[string]interface{}) map[string]interface{} {
	partial := make(map[string]interface{}, len(row))
	for k, v := range row {
		if k == ent.KeyCol || k == "created_on" || v == nil {
			continue
		}
		partial[k] = v
	}
	return partial
}

func chunkRows(rows []map[string]interface{}, size int) [][]map[string]interface{} {
	var out [][]map[string]interface{}
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}
	return out
}

func chunkKeys(keys []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(keys); start += size {
		end := start + size
		if end > len(keys) {
			end = len(keys)
		}
		out = append(out, keys[start:end])
	}
	return out
}
