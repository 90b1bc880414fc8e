package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexJGeorge1/ragqa/types"
)

func TestSaveJSON_LoadJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deep", "state.json")
	rec := Record{
		"name":    "café résumé",
		"count":   float64(42),
		"nested":  map[string]any{"ok": true},
		"list":    []any{"a", "b"},
		"unicode": "日本語",
	}

	require.NoError(t, SaveJSON(rec, path))

	got := LoadJSON(path)
	assert.Equal(t, rec, got)
}

func TestSaveJSON_FormatContract(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, SaveJSON(Record{"text": "naïve <tag>", "k": float64(1)}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// 2-space indentation, non-ASCII and HTML characters kept literal.
	assert.Contains(t, string(data), "\n  \"")
	assert.Contains(t, string(data), "naïve <tag>")
	assert.NotContains(t, string(data), `\u`)
}

func TestSaveJSON_SerializationErrorLeavesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	err := SaveJSON(Record{"handle": make(chan int)}, path)

	assert.True(t, types.HasCode(err, types.ErrSerialization), "got %v", err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial file may be written")
}

func TestSaveJSON_WriteError(t *testing.T) {
	t.Parallel()

	// Parent "directory" is a regular file, so MkdirAll must fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := SaveJSON(Record{"a": "b"}, filepath.Join(blocker, "state.json"))
	assert.True(t, types.HasCode(err, types.ErrWriteFailed), "got %v", err)
	assert.Contains(t, err.Error(), "state.json")
}

func TestLoadJSON_AbsentAndCorrupt(t *testing.T) {
	t.Parallel()

	t.Run("absent path", func(t *testing.T) {
		t.Parallel()

		got := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("corrupt json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		got := LoadJSON(path)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		assert.Empty(t, LoadJSON(path))
	})
}

func TestLoadJSONResult_Statuses(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	okPath := filepath.Join(dir, "ok.json")
	require.NoError(t, SaveJSON(Record{"a": "b"}, okPath))

	corruptPath := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corruptPath, []byte("]["), 0o644))

	tests := []struct {
		name   string
		path   string
		status LoadStatus
	}{
		{name: "ok", path: okPath, status: LoadOK},
		{name: "absent", path: filepath.Join(dir, "nope.json"), status: LoadAbsent},
		{name: "corrupt", path: corruptPath, status: LoadCorrupt},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, status := LoadJSONResult(tt.path)
			assert.Equal(t, tt.status, status)
			assert.NotNil(t, rec)
		})
	}
}
