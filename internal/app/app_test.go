package app_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"vnat/internal/app"
	"vnat/internal/nat"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, app.DefaultConfig(), cfg)

	cfg, err = app.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, uint32(app.DefaultMaxValue), cfg.MaxValue)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vnat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_value: 7\nverbose: true\n"), 0o600))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, app.Config{MaxValue: 7, Verbose: true}, cfg)
}

func TestLoadConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vnat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, uint32(app.DefaultMaxValue), cfg.MaxValue)
	require.True(t, cfg.Verbose)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vnat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_value: [\n"), 0o600))

	_, err := app.LoadConfig(path)
	require.Error(t, err)
}

func TestBuild_Limit(t *testing.T) {
	a := app.New(app.Config{MaxValue: 5}, zaptest.NewLogger(t))

	tree, err := a.Build(5)
	require.NoError(t, err)
	require.True(t, tree.Equal(nat.FromUint32(5)))

	_, err = a.Build(6)
	require.ErrorIs(t, err, app.ErrValueTooLarge)
}

func TestBuild_NoLimit(t *testing.T) {
	a := app.New(app.Config{MaxValue: 0}, nil)
	tree, err := a.Build(12)
	require.NoError(t, err)
	require.Equal(t, uint32(12), tree.Uint32())
}

func TestAdd(t *testing.T) {
	a := app.New(app.Config{MaxValue: 6}, zaptest.NewLogger(t))

	x, y, sum, err := a.Add(2, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(2), x.Uint32())
	require.Equal(t, uint32(4), y.Uint32())
	require.True(t, sum.Equal(nat.FromUint32(6)))

	_, _, _, err = a.Add(3, 4)
	require.ErrorIs(t, err, app.ErrValueTooLarge)
}

func TestAdd_Overflow(t *testing.T) {
	a := app.New(app.Config{}, nil)
	_, _, _, err := a.Add(math.MaxUint32, 1)
	require.True(t, errors.Is(err, app.ErrValueTooLarge))
}

func TestParseAndCheck(t *testing.T) {
	a := app.New(app.DefaultConfig(), zaptest.NewLogger(t))

	tree, err := a.Parse("{{}, {{}}}")
	require.NoError(t, err)
	v, err := a.Check(tree)
	require.NoError(t, err)
	require.Equal(t, uint32(2), v)

	bad, err := a.Parse("{{{}}}")
	require.NoError(t, err)
	_, err = a.Check(bad)
	require.ErrorIs(t, err, nat.ErrMalformedTree)

	_, err = a.Parse("{")
	require.ErrorIs(t, err, nat.ErrSyntax)
}
