package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "cooler-fleet-portal/pkg/errors"
)

// Frame is a loaded export file: one header row plus data rows aligned to
// it. Short rows are padded with empty cells.
type Frame struct {
	Headers []string
	Rows    [][]string
}

// Records iterates the rows as header-keyed maps.
func (f *Frame) Records() []map[string]string {
	out := make([]map[string]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		rec := make(map[string]string, len(f.Headers))
		for i, h := range f.Headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

// IsNull reports whether a cell carries no value. Vendor exports render
// missing data as empty strings or literal placeholder tokens.
func IsNull(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "N/A", "NONE", "NULL", "NAN":
		return true
	}
	return false
}

func cleanHeader(h string) string {
	return strings.TrimSpace(strings.ReplaceAll(h, "\uFEFF", ""))
}

// LoadFile reads an xlsx or csv export into a Frame. The known func reports
// whether a header belongs to the target entity; the csv probe uses it to
// pick the right delimiter and to skip a vendor title line.
func LoadFile(path string, known func(string) bool) (*Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return loadExcel(path)
	case ".csv":
		return loadCSV(path, known)
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFormat, filepath.Base(path))
}

func loadExcel(path string) (*Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyFile
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = cleanHeader(h)
	}
	return &Frame{Headers: headers, Rows: rows[1:]}, nil
}

var csvDelimiters = []rune{',', ';', '\t', '|'}

// loadCSV handles the vendor's UTF-16 exports as well as plain UTF-8. Some
// exports carry a report title on the first line; the probe tries the first
// line as the header and falls back to the second when the first yields no
// recognized column.
func loadCSV(path string, known func(string) bool) (*Frame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text, err := decodeCSVBytes(raw)
	if err != nil {
		return nil, err
	}

	var best *Frame
	for _, skip := range []int{0, 1} {
		for _, delim := range csvDelimiters {
			fr, err := parseCSV(text, delim, skip)
			if err != nil || len(fr.Headers) == 0 {
				continue
			}
			for _, h := range fr.Headers {
				if known(h) {
					return fr, nil
				}
			}
			if best == nil || len(fr.Headers) > len(best.Headers) {
				best = fr
			}
		}
	}
	if best == nil {
		return nil, apperrors.ErrEmptyFile
	}
	return best, nil
}

func decodeCSVBytes(raw []byte) (string, error) {
	if len(raw) >= 2 && ((raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF)) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), dec))
		if err != nil {
			return "", fmt.Errorf("decode utf-16: %w", err)
		}
		return string(out), nil
	}
	return strings.TrimPrefix(string(raw), "\uFEFF"), nil
}

func parseCSV(text string, delim rune, skip int) (*Frame, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var headers []string
	var rows [][]string
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate malformed lines the way the exports demand.
			continue
		}
		if line < skip {
			line++
			continue
		}
		if headers == nil {
			headers = make([]string, len(rec))
			for i, h := range rec {
				headers[i] = cleanHeader(h)
			}
		} else {
			rows = append(rows, rec)
		}
		line++
	}
	if headers == nil {
		return &Frame{}, nil
	}
	return &Frame{Headers: headers, Rows: rows}, nil
}
