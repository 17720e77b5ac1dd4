package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDir_Exists(t *testing.T) {
	t.Run("Directory", func(t *testing.T) {
		ok, err := OpenDir(t.TempDir()).Exists()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Missing", func(t *testing.T) {
		ok, err := OpenDir(filepath.Join(t.TempDir(), "nope")).Exists()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RegularFile", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "file.json", `{}`)
		ok, err := OpenDir(filepath.Join(dir, "file.json")).Exists()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDir_Entries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{}`)
	writeFile(t, dir, "a.json", `{}`)
	writeFile(t, dir, "UPPER.JSON", `{}`)
	writeFile(t, dir, "notes.txt", `ignored`)
	writeFile(t, dir, "stream.yaml", `a: 1`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.json"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub"), "deep.json", `{}`)

	t.Run("DefaultExtension", func(t *testing.T) {
		names, err := OpenDir(dir).Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"UPPER.JSON", "a.json", "b.json"}, names)
	})

	t.Run("CustomExtensions", func(t *testing.T) {
		names, err := OpenDir(dir, "json", ".YAML").Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"UPPER.JSON", "a.json", "b.json", "stream.yaml"}, names)
	})

	t.Run("Paths", func(t *testing.T) {
		entries, err := OpenDir(dir).Entries()
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Equal(t, filepath.Join(dir, entries[0].Name), entries[0].Path)
	})

	t.Run("MissingRoot", func(t *testing.T) {
		_, err := OpenDir(filepath.Join(dir, "absent")).Entries()
		assert.Error(t, err)
	})
}

func TestDir_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "template.json", `{"kind": "Template", "parameters": [{"name": "PORT", "value": 8080}]}`)
	writeFile(t, dir, "broken.json", `{"kind": `)

	d := OpenDir(dir)

	v, err := d.Load("template.json")
	require.NoError(t, err)
	doc := v.(map[string]any)
	assert.Equal(t, "Template", doc["kind"])
	params := doc["parameters"].([]any)
	assert.Equal(t, json.Number("8080"), params[0].(map[string]any)["value"])

	_, err = d.Load("broken.json")
	assert.ErrorIs(t, err, ErrParse)

	_, err = d.Load("missing.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrParse)

	_, err = d.Load("../template.json")
	assert.Error(t, err)
}

func TestParse_JSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"Object", `{"a": 1}`, false},
		{"Array", `[1, 2]`, false},
		{"Scalar", `"text"`, false},
		{"Whitespace after value", "{}\n\n", false},
		{"Empty", ``, true},
		{"Truncated", `{"a": [1, 2`, true},
		{"Trailing garbage", `{} x`, true},
		{"Two values", `{} {}`, true},
		{"Invalid UTF-8", "{\"a\": \"\xff\"}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("doc.json", []byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse_PreservesNumberPrecision(t *testing.T) {
	v, err := Parse("doc.json", []byte(`{"big": 12345678901234567890, "f": 0.10000000000000001}`))
	require.NoError(t, err)
	doc := v.(map[string]any)
	assert.Equal(t, json.Number("12345678901234567890"), doc["big"])
	assert.Equal(t, json.Number("0.10000000000000001"), doc["f"])
}

func TestParse_YAML(t *testing.T) {
	data := `
kind: ImageStream
metadata:
  name: ruby
spec:
  tags:
    - name: "2.5"
      generation: 2
      ratio: 0.5
      enabled: true
      empty: null
  1: numeric-key
`
	v, err := Parse("ruby.yaml", []byte(data))
	require.NoError(t, err)

	doc := v.(map[string]any)
	assert.Equal(t, "ImageStream", doc["kind"])

	spec := doc["spec"].(map[string]any)
	assert.Equal(t, "numeric-key", spec["1"])

	tag := spec["tags"].([]any)[0].(map[string]any)
	assert.Equal(t, "2.5", tag["name"])
	assert.Equal(t, json.Number("2"), tag["generation"])
	assert.Equal(t, json.Number("0.5"), tag["ratio"])
	assert.Equal(t, true, tag["enabled"])
	assert.Nil(t, tag["empty"])

	_, err = Parse("bad.yml", []byte("a: [1, 2"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestNormalize(t *testing.T) {
	v, err := Normalize(map[any]any{1: []any{int64(2), uint64(3), 1.5}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": []any{json.Number("2"), json.Number("3"), json.Number("1.5")}}, v)

	_, err = Normalize(struct{}{})
	assert.Error(t, err)
}
