package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	cfg, err := Parse([]byte(`
packages: ["./store", "./catalog/..."]
suffix: _rs.go
comments: false
verbose: true
parallelism: 2
`), "yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"./store", "./catalog/..."}, cfg.Packages)
	assert.Equal(t, "_rs.go", cfg.Suffix)
	assert.False(t, cfg.Comments)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, "const-generator/render", cfg.RenderImport)
}

func TestParse_TOML(t *testing.T) {
	cfg, err := Parse([]byte(`
packages = ["./store"]
render_import = "example.com/fork/render"
comments = false
`), "toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"./store"}, cfg.Packages)
	assert.Equal(t, "example.com/fork/render", cfg.RenderImport)
	assert.False(t, cfg.Comments)
	assert.Equal(t, "_const.go", cfg.Suffix)
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse(nil, format)
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  string
		wantErr error
	}{
		{name: "unknown yaml key", data: "suffixes: x\n", format: "yaml"},
		{name: "unknown toml key", data: "suffixes = \"x\"\n", format: "toml", wantErr: ErrInvalid},
		{name: "bad yaml", data: "packages: [\n", format: "yaml"},
		{name: "bad toml", data: "packages = \n", format: "toml"},
		{name: "bad suffix", data: "suffix: _const.txt\n", format: "yaml", wantErr: ErrInvalid},
		{name: "test suffix", data: "suffix = \"_const_test.go\"\n", format: "toml", wantErr: ErrInvalid},
		{name: "no packages", data: "packages: []\n", format: "yaml", wantErr: ErrInvalid},
		{name: "zero parallelism", data: "parallelism = 0\n", format: "toml", wantErr: ErrInvalid},
		{name: "format", data: "", format: "json", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()

	path, err := Find(dir)
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "constgen.toml"), []byte("verbose = true\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "constgen.yml"), []byte("verbose: false\n"), 0o644))

	// yml wins over toml
	path, err = Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "constgen.yml"), path)

	cfg, err := LoadFile(filepath.Join(dir, "constgen.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)

	_, err = LoadFile(filepath.Join(dir, "constgen.json"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "constgen.ini"), nil, 0o644))
	_, err = LoadFile(filepath.Join(dir, "constgen.ini"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}
