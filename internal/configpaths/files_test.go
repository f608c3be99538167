package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Alia5/xkeymap/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses AppData on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "xkeymap"), dir)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/user")
	dir, err = configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user", ".config", "xkeymap"), dir)
}

func TestConfigCandidatePaths(t *testing.T) {

	type testCase struct {
		name     string
		userPath string
		first    func(configpaths.Candidates) string
	}

	testCases := []testCase{
		{name: "json", userPath: "custom.json", first: func(c configpaths.Candidates) string { return c.JSON[0] }},
		{name: "no extension", userPath: "custom", first: func(c configpaths.Candidates) string { return c.JSON[0] }},
		{name: "yaml", userPath: "custom.yaml", first: func(c configpaths.Candidates) string { return c.YAML[0] }},
		{name: "yml", userPath: "custom.yml", first: func(c configpaths.Candidates) string { return c.YAML[0] }},
		{name: "toml", userPath: "custom.toml", first: func(c configpaths.Candidates) string { return c.TOML[0] }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := configpaths.ConfigCandidatePaths(tc.userPath)
			assert.Equal(t, tc.userPath, tc.first(c))
		})
	}
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses AppData on windows")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	c := configpaths.ConfigCandidatePaths("")
	require.NotEmpty(t, c.JSON)
	assert.Equal(t, "xkeymap.json", filepath.Base(c.JSON[0]))
	assert.Contains(t, c.YAML, filepath.Join(xdg, "xkeymap", "config.yml"))
	assert.Contains(t, c.TOML, filepath.Join("/etc", "xkeymap", "xkeymap.toml"))
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c.json")
	require.NoError(t, configpaths.EnsureDir(target))
	assert.DirExists(t, filepath.Dir(target))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "json", configpaths.Extension("json"))
	assert.Equal(t, "yaml", configpaths.Extension("yml"))
	assert.Equal(t, "toml", configpaths.Extension("toml"))
	assert.Equal(t, "json", configpaths.Extension("ini"))
}
