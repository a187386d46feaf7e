package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"defterm/internal/term"
)

// Config is the content of config.yaml.
type Config struct {
	Profile    term.Profile `yaml:"profile"`
	ContentDir string       `yaml:"content_dir,omitempty"`
	WebAddr    string       `yaml:"web_addr,omitempty"`
	SSHAddr    string       `yaml:"ssh_addr,omitempty"`
	HostKey    string       `yaml:"host_key,omitempty"`
	LogLevel   string       `yaml:"log_level,omitempty"`
}

const (
	DefaultWebAddr  = "127.0.0.1:8787"
	DefaultSSHAddr  = "127.0.0.1:2222"
	DefaultLogLevel = "info"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Profile:  term.DefaultProfile,
		WebAddr:  DefaultWebAddr,
		SSHAddr:  DefaultSSHAddr,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads config.yaml. If the file does not exist, returns Default and no
// error. Empty fields fall back to their defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile is Load for an explicit path.
func LoadFile(p string) (Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default()
	c.ContentDir = strings.TrimSpace(c.ContentDir)
	if c.WebAddr = strings.TrimSpace(c.WebAddr); c.WebAddr == "" {
		c.WebAddr = def.WebAddr
	}
	if c.SSHAddr = strings.TrimSpace(c.SSHAddr); c.SSHAddr == "" {
		c.SSHAddr = def.SSHAddr
	}
	if c.LogLevel = strings.TrimSpace(c.LogLevel); c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.Profile = c.Profile.Merge(def.Profile)
}

// Save writes cfg to config.yaml, creating the directory if needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(p, cfg)
}

// SaveFile is Save for an explicit path.
func SaveFile(p string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Exists reports whether config.yaml is present.
func Exists() bool {
	p, err := Path()
	if err != nil {
		return false
	}
	return FileExists(p)
}

// FileExists reports whether p is a regular file.
func FileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
