package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "~/.config/droidcat/config.toml"
	envPrefix         = "DROIDCAT"
)

// Persisted keys.
const (
	KeyFormat        = "terminal_format"
	KeyMonochrome    = "terminal_monochrome"
	KeyHideTimestamp = "terminal_hide_timestamp"
	KeyNoDimm        = "terminal_no_dimm"
	KeyShortenTags   = "terminal_shorten_tags"
	KeyShowDate      = "terminal_show_date"
	KeyTagWidth      = "terminal_tag_width"
	KeyShowTimeDiff  = "terminal_show_time_diff"
	KeyTimeDiffWidth = "terminal_time_diff_width"
)

// Store holds persisted settings. Lookups report whether the key was set so
// callers can fall back to built-in defaults.
type Store struct {
	v    *viper.Viper
	path string
}

// Load reads the config file at path (or the default location). A missing
// file yields an empty Store; DROIDCAT_* environment variables still apply.
func Load(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(resolved)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if _, err := os.Stat(resolved); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Store{v: v, path: resolved}, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &Store{v: v, path: resolved}, nil
}

// Path returns the resolved config file location.
func (s *Store) Path() string {
	return s.path
}

// Bool returns the value for key and whether it was set.
func (s *Store) Bool(key string) (bool, bool) {
	if s == nil || !s.v.IsSet(key) {
		return false, false
	}
	return s.v.GetBool(key), true
}

// Int returns the value for key and whether it was set.
func (s *Store) Int(key string) (int, bool) {
	if s == nil || !s.v.IsSet(key) {
		return 0, false
	}
	return s.v.GetInt(key), true
}

// String returns the trimmed value for key and whether it was set to a
// non-empty value.
func (s *Store) String(key string) (string, bool) {
	if s == nil || !s.v.IsSet(key) {
		return "", false
	}
	value := strings.TrimSpace(s.v.GetString(key))
	return value, value != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
