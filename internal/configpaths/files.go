// Package configpaths locates xkeymap configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "xkeymap"

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "XKEYMAP_CONFIG"

// baseNames are the config file names probed in every directory.
var baseNames = []string{appName, "config"}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", appName), nil
	}
	return "", errors.New("HOME not set")
}

// EnsureDir creates the parent directory of filePath.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Extension returns the file extension used for a config format.
// Unknown formats fall back to json.
func Extension(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// Candidates lists config files per loader, highest priority first.
type Candidates struct {
	JSON []string
	YAML []string
	TOML []string
}

func (c *Candidates) addDir(dir string) {
	for _, base := range baseNames {
		p := filepath.Join(dir, base)
		c.JSON = append(c.JSON, p+".json")
		c.YAML = append(c.YAML, p+".yaml", p+".yml")
		c.TOML = append(c.TOML, p+".toml")
	}
}

// ConfigCandidatePaths builds the candidate list. userPath, when set, is
// routed to the loader matching its extension and comes first; then the
// working directory, the user config dir and /etc/xkeymap (non-Windows).
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			c.YAML = append(c.YAML, userPath)
		case ".toml":
			c.TOML = append(c.TOML, userPath)
		default:
			c.JSON = append(c.JSON, userPath)
		}
	}

	if wd, err := os.Getwd(); err == nil {
		c.addDir(wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		c.addDir(dir)
	}
	if runtime.GOOS != "windows" {
		c.addDir(filepath.Join("/etc", appName))
	}
	return c
}
