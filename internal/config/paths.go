package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the defterm config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/defterm; on macOS
// to ~/Library/Application Support/defterm; and on Windows to %AppData%/defterm.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "defterm"), nil
}

// Path returns the location of config.yaml.
func Path() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// LogPath is where the TUI writes its log while it owns the screen.
func LogPath() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "defterm.log"), nil
}

// HostKeyPath is the default location of the SSH host key.
func HostKeyPath() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "ssh_host_ed25519_key"), nil
}
