package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	HistoryFile() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: appTag, goos: runtime.GOOS}
	home, err := os.UserHomeDir()
	if err != nil {
		return a, err
	}
	a.home = home
	return a, nil
}

type appPaths struct {
	tag  string
	home string
	goos string
}

var _ AppPaths = appPaths{}

// dirname is the tag as a directory name. Unix-like systems use lower case.
func (a appPaths) dirname() string {
	switch a.goos {
	case "darwin", "windows":
		return a.tag
	}
	return strings.ToLower(a.tag)
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		switch a.goos {
		case "darwin":
			c = filepath.Join(a.home, "Library", "Application Support")
		case "windows":
			c = a.home
		default:
			c = filepath.Join(a.home, ".config")
		}
	}
	return filepath.Join(c, a.dirname())
}

func (a appPaths) LogDir() string {
	if a.goos == "darwin" {
		return filepath.Join(a.home, "Library", "Logs", a.dirname())
	}
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.dirname())
}

// HistoryFile is the location of the REPL history. It lives in the temp
// directory if there is no config directory.
func (a appPaths) HistoryFile() string {
	name := strings.ToLower(a.tag) + "-repl-history"
	if dir := a.ConfigDir(); a.home != "" && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, name)
		}
	}
	return filepath.Join(os.TempDir(), name+".tmp")
}
