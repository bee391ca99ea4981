// Package paths locates the directories abacus keeps its configuration and
// data in, honoring flag and environment overrides before falling back to
// platform conventions.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory names used relative to the working directory when nothing
// overrides them.
const (
	DefaultConfigDirName = ".abacus"
	DefaultDataDirName   = ".abacus-db"
)

// Override variables, checked before the platform defaults.
const (
	EnvConfigDir = "ABACUS_CONFIG_DIR"
	EnvDataDir   = "ABACUS_DATA_DIR"
)

// platformDir lets tests swap out the OS directory lookups.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir picks the per-user configuration directory for the host
// platform: $XDG_CONFIG_HOME/abacus (or ~/.config/abacus) on Linux,
// ~/Library/Application Support/abacus on macOS, %APPDATA%/abacus on
// Windows.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "abacus"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "abacus"), nil
	default:
		// os.UserConfigDir covers both macOS and Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "abacus"), nil
	}
}

// DefaultDataDir picks the per-user data directory for the host platform:
// $XDG_DATA_HOME/abacus (or ~/.local/share/abacus) on Linux, and the same
// location as the config dir elsewhere.
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "abacus"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "abacus"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "abacus"), nil
	}
}

// ResolveConfigDir picks the configuration directory, preferring the flag
// value, then ABACUS_CONFIG_DIR, then the platform default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory, preferring the flag value, then
// the config.yaml setting, then ABACUS_DATA_DIR, then .abacus-db under the
// working directory. The last option keeps per-project state next to the
// project itself.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
