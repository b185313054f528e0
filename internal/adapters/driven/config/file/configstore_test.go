package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".comparedocs", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Getters(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("output.precision", 6))
	require.NoError(t, store.Set("logging.verbose", true))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("output.format"), "json"},
		{"int", store.GetInt("output.precision"), 6},
		{"bool", store.GetBool("logging.verbose"), true},
		{"string of int", store.GetString("output.precision"), ""},
		{"int of string", store.GetInt("output.format"), 0},
		{"bool of string", store.GetBool("output.format"), false},
		{"missing string", store.GetString("missing"), ""},
		{"missing int", store.GetInt("missing"), 0},
		{"missing bool", store.GetBool("missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	val, ok := newStore(t).Get("nonexistent")

	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("output.format", "json"))
	require.NoError(t, store1.Set("compare.concurrency", 8))
	require.NoError(t, store1.Set("logging.verbose", true))

	// A new instance reads back int64 values from TOML.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "json", store2.GetString("output.format"))
	assert.Equal(t, 8, store2.GetInt("compare.concurrency"))
	assert.True(t, store2.GetBool("logging.verbose"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("output.precision", 3))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Contains(t, string(data), "[output]")
	assert.NotContains(t, string(data), `"output.format"`)
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[compare]
concurrency = 4

[output]
format = "json"
precision = 2

[extractors]
pdftotext = "/opt/poppler/bin/pdftotext"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 4, store.GetInt("compare.concurrency"))
	assert.Equal(t, "json", store.GetString("output.format"))
	assert.Equal(t, 2, store.GetInt("output.precision"))
	assert.Equal(t, "/opt/poppler/bin/pdftotext", store.GetString("extractors.pdftotext"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.format", "table"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.precision", 4))
	require.NoError(t, store.Set("output.precision", 9))

	assert.Equal(t, 9, store.GetInt("output.precision"))
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.format", "table"))

	// Replace the file with a directory so the write fails.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err := store.Set("output.format", "json")

	assert.Error(t, err)
	assert.Equal(t, "table", store.GetString("output.format"))
}

func TestConfigStore_Set_UnmarshallableValueRollsBack(t *testing.T) {
	store := newStore(t)

	err := store.Set("channel", make(chan int))
	require.Error(t, err)

	_, ok := store.Get("channel")
	assert.False(t, ok)
	assert.NoError(t, store.Set("output.format", "json"))
}

func TestConfigStore_Set_ConflictingKeys(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output", "flat"))

	err := store.Set("output.format", "json")

	assert.Error(t, err)
	_, ok := store.Get("output.format")
	assert.False(t, ok)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("valid", "data"))
	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Load_PicksUpExternalEdits(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.format", "table"))
	require.NoError(t, os.WriteFile(store.Path(), []byte("[output]\nformat = \"json\"\n"), 0600))

	require.NoError(t, store.Load())
	assert.Equal(t, "json", store.GetString("output.format"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.GetBool(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, store.GetInt("key"+string(rune('0'+i))))
	}
}

func TestFlattenUnflattenMap(t *testing.T) {
	nested := map[string]any{
		"output":  map[string]any{"format": "json", "precision": int64(3)},
		"compare": map[string]any{"concurrency": int64(2)},
		"top":     "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"output.format":       "json",
		"output.precision":    int64(3),
		"compare.concurrency": int64(2),
		"top":                 "level",
	}, flat)

	back, err := unflattenMap(flat)
	require.NoError(t, err)
	assert.Equal(t, nested, back)
}
