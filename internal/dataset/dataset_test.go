package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" yaml:"name" validate:"required"`
	Tags  []string `json:"tags" yaml:"tags" validate:"required,dive,required"`
	Count int      `json:"count,omitempty" yaml:"count,omitempty"`
}

func TestDecode_JSON(t *testing.T) {
	var s sample
	require.NoError(t, Decode("s.json", []byte(`{"name":"x","tags":["a"]}`), &s))
	assert.Equal(t, "x", s.Name)
	assert.Equal(t, []string{"a"}, s.Tags)
}

func TestDecode_YAML(t *testing.T) {
	var s sample
	require.NoError(t, Decode("s.yaml", []byte("name: x\ntags: [a, b]\n"), &s))
	assert.Equal(t, []string{"a", "b"}, s.Tags)
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	tests := []struct {
		name string
		file string
		raw  string
	}{
		{"json", "s.json", `{"name":"x","tags":[],"bogus":1}`},
		{"yaml", "s.yml", "name: x\ntags: []\nbogus: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s sample
			err := Decode(tt.file, []byte(tt.raw), &s)
			var dfe *DataFormatError
			require.ErrorAs(t, err, &dfe)
			assert.Equal(t, tt.file, dfe.Source)
		})
	}
}

func TestDecode_EmptyAndTrailing(t *testing.T) {
	var s sample
	require.Error(t, Decode("s.json", nil, &s))
	require.Error(t, Decode("s.json", []byte(`{"name":"x","tags":[]} {}`), &s))
}

func TestValidate_ReportsFirstField(t *testing.T) {
	err := Validate("s.json", &sample{Tags: []string{"a"}})
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, "sample.Name", dfe.Field)
	assert.Contains(t, err.Error(), "required")
}

func TestValidate_NilSliceIsMissing(t *testing.T) {
	err := Validate("s.json", &sample{Name: "x"})
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, "sample.Tags", dfe.Field)

	require.NoError(t, Validate("s.json", &sample{Name: "x", Tags: []string{}}))
}

func TestRead(t *testing.T) {
	fallback := fstest.MapFS{"d.json": {Data: []byte("embedded")}}

	raw, src, err := Read("", fallback, "d.json")
	require.NoError(t, err)
	assert.Equal(t, "embedded", string(raw))
	assert.Equal(t, "d.json", src)

	path := filepath.Join(t.TempDir(), "override.json")
	require.NoError(t, os.WriteFile(path, []byte("disk"), 0o600))
	raw, src, err = Read(path, fallback, "d.json")
	require.NoError(t, err)
	assert.Equal(t, "disk", string(raw))
	assert.Equal(t, path, src)

	_, _, err = Read(filepath.Join(t.TempDir(), "missing.json"), fallback, "d.json")
	require.Error(t, err)
}
