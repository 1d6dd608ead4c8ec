package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moduleRoot = "../.."

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(discard))
	cmd.SetErr(new(discard))

	return cmd.ExecuteContext(context.Background())
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestCheck_UpToDate(t *testing.T) {
	require.NoError(t, execute(t, "check", "-C", moduleRoot))
}

func TestDerive_OutputDir(t *testing.T) {
	out := t.TempDir()

	require.NoError(t, execute(t, "derive", "-C", moduleRoot, "--out", out, "./store"))

	got, err := os.ReadFile(filepath.Join(out, "store_const.go"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(moduleRoot, "store", "store_const.go"))
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))
}

func TestCheck_Stale(t *testing.T) {
	// without comments the output differs from the checked-in file
	err := execute(t, "check", "-C", moduleRoot, "--comments=false")
	require.ErrorIs(t, err, errStale)
}

func TestDerive_DirectiveErrors(t *testing.T) {
	err := execute(t, "derive", "-C", moduleRoot, "--out", t.TempDir(), "./internal/analyze/testdata/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directive error(s)")
}

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "constgen.toml"), []byte(`
packages = ["./a", "./b"]
suffix = "_rs.go"
verbose = true
parallelism = 3
`), 0o644))

	opts := &options{}
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"check"})
	require.NoError(t, err)

	require.NoError(t, cmd.ParseFlags([]string{"-C", dir, "--suffix", "_gen.go", "--parallelism", "1"}))

	// the flags were bound to the root's options, read them back
	opts.dir, _ = cmd.Flags().GetString("dir")
	opts.suffix, _ = cmd.Flags().GetString("suffix")
	opts.parallelism, _ = cmd.Flags().GetInt("parallelism")

	cfg, err := opts.resolve(cmd, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"./a", "./b"}, cfg.Packages)
	assert.Equal(t, "_gen.go", cfg.Suffix)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 1, cfg.Parallelism)

	cfg, err = opts.resolve(cmd, []string{"./c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"./c"}, cfg.Packages)
}

func TestResolve_InvalidOverride(t *testing.T) {
	err := execute(t, "check", "-C", t.TempDir(), "--suffix", "_const.txt")
	require.Error(t, err)
}
