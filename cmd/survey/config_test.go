package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	c, err := readConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), c)
}

func TestReadConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.toml")

	c, err := readConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), c)
	require.FileExists(t, path)

	again, err := readConfig(path)
	require.NoError(t, err)
	require.Equal(t, c.Survey, again.Survey)
	require.Equal(t, c.Themes.Builtin, again.Themes.Builtin)
}

func TestReadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.toml")
	data := `
[Survey]
Seed = 1234
Radius = 300

[Themes]
Builtin = false
Files = ["a.toml", "b.toml"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := readConfig(path)
	require.NoError(t, err)
	require.EqualValues(t, 1234, c.Survey.Seed)
	require.Equal(t, 300, c.Survey.Radius)
	require.Equal(t, 8, c.Survey.SiteRadius, "unset keys keep their default")
	require.False(t, c.Themes.Builtin)
	require.Equal(t, []string{"a.toml", "b.toml"}, c.Themes.Files)
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Survey\nSeed = "), 0644))

	_, err := readConfig(path)
	require.Error(t, err)
}
