package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".imported_bookmarks.json")
}

func writeLedger(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestLoadValidFile(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A", "B", "C"]}`)

	ids, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestLoadSkipsNullEntries(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A", null, "B"]}`)

	ids, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)
}

func TestLoadMissingFileCreatesEmptyLedger(t *testing.T) {
	path := ledgerPath(t)

	ids, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, ids)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"imported_bookmark_ids": []}`, string(raw))
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "truncated JSON",
			contents: `{"imported_bookmark_ids": ["A", "B"`,
		},
		{
			name:     "not an object",
			contents: `["A", "B", "C"]`,
		},
		{
			name:     "wrong key",
			contents: `{"wrong_key": ["A", "B", "C"]}`,
		},
		{
			name:     "value not a list",
			contents: `{"imported_bookmark_ids": "not a list"}`,
		},
		{
			name:     "list of non-strings",
			contents: `{"imported_bookmark_ids": [1, 2, 3]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ledgerPath(t)
			writeLedger(t, path, tt.contents)

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrCorrupt)

			// The corrupt file must be preserved untouched.
			raw, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.contents, string(raw))
		})
	}
}

func TestRecordAppendsNewID(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A", "B", "C"]}`)

	require.NoError(t, Record(path, "D"))

	ids, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
}

func TestRecordIsIdempotent(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A", "B", "C"]}`)

	require.NoError(t, Record(path, "D"))
	require.NoError(t, Record(path, "D"))
	require.NoError(t, Record(path, "C"))

	ids, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
}

func TestRecordOnMissingFile(t *testing.T) {
	path := ledgerPath(t)

	require.NoError(t, Record(path, "A"))

	ids, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)
}

func TestSaveRoundTrip(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A", "B"]}`)

	require.NoError(t, Record(path, "X"))

	// Loading and re-recording an existing id must not reorder the file.
	ids, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Record(path, "A"))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ids, again)

	var top map[string][]string
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &top))
	assert.Equal(t, []string{"A", "B", "X"}, top[Key])
}

func TestLoadOrResetConfirmed(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A"`)

	asked := false
	ids, err := LoadOrReset(path, func(prompt string) bool {
		asked = true
		return true
	})
	require.NoError(t, err)
	assert.True(t, asked)
	assert.Empty(t, ids)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"imported_bookmark_ids": []}`, string(raw))
}

func TestLoadOrResetDeclined(t *testing.T) {
	path := ledgerPath(t)
	corrupt := `{"imported_bookmark_ids": ["A"`
	writeLedger(t, path, corrupt)

	_, err := LoadOrReset(path, func(prompt string) bool { return false })
	assert.ErrorIs(t, err, ErrCorrupt)

	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, string(raw))
}

func TestLoadOrResetValidFileNeverPrompts(t *testing.T) {
	path := ledgerPath(t)
	writeLedger(t, path, `{"imported_bookmark_ids": ["A"]}`)

	ids, err := LoadOrReset(path, func(prompt string) bool {
		t.Fatal("confirm must not be called for a valid ledger")
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)
}
