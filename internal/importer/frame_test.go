package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knowsHeaders(headers ...string) func(string) bool {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[h] = true
	}
	return func(h string) bool { return set[h] }
}

func TestLoadCSVUTF16WithTitleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	writeUTF16CSV(t, path, []string{
		"User Export Report",
		"UPN,Display Name,City",
		"jdoe@example.com,Jane Doe,Curitiba",
		"rroe@example.com,Rick Roe,Recife",
	})

	fr, err := LoadFile(path, knowsHeaders("UPN"))
	require.NoError(t, err)
	assert.Equal(t, []string{"UPN", "Display Name", "City"}, fr.Headers)
	require.Len(t, fr.Rows, 2)

	recs := fr.Records()
	assert.Equal(t, "jdoe@example.com", recs[0]["UPN"])
	assert.Equal(t, "Recife", recs[1]["City"])
}

func TestLoadCSVSemicolonDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outlets.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"Code;Name;City\nOUT-1;Corner Store;Salvador\nOUT-2;Mini Mart;Manaus\n",
	), 0o644))

	fr, err := LoadFile(path, knowsHeaders("Code"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Code", "Name", "City"}, fr.Headers)
	assert.Len(t, fr.Rows, 2)
}

func TestLoadCSVUnknownHeadersPicksWidest(t *testing.T) {
	// No header is recognized, so the probe falls back to whichever
	// delimiter splits the header line into the most columns.
	path := filepath.Join(t.TempDir(), "mystery.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"alpha,beta,gamma\n1,2,3\n",
	), 0o644))

	fr, err := LoadFile(path, func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, fr.Headers)
}

func TestLoadFileRejectsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := LoadFile(path, func(string) bool { return true })
	require.Error(t, err)
}

func TestRecordsPadShortRows(t *testing.T) {
	fr := &Frame{
		Headers: []string{"a", "b", "c"},
		Rows:    [][]string{{"1", "2"}},
	}
	recs := fr.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "2", recs[0]["b"])
	assert.Equal(t, "", recs[0]["c"])
}

func TestIsNull(t *testing.T) {
	for _, s := range []string{"", "  ", "N/A", "n/a", "None", "NULL", "nan", " NaN "} {
		assert.True(t, IsNull(s), "value %q", s)
	}
	for _, s := range []string{"0", "false", "NA ", "nil", "-"} {
		assert.False(t, IsNull(s), "value %q", s)
	}
}
