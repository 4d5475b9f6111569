// Package profiles manages named rendering profiles.
// Profiles are stored in ~/.config/droidcat/profiles.toml.
package profiles

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/droidcat/internal/config"
)

const defaultProfilesPath = "~/.config/droidcat/profiles.toml"

var (
	// ErrUnknownProfile is returned when a requested or extended profile does
	// not exist.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrProfileCycle is returned when profiles extend each other in a loop.
	ErrProfileCycle = errors.New("profile extends itself")
)

// Profile supplies defaults for a rendering session.
type Profile struct {
	Comment   string   `toml:"comment,omitempty"`
	Extends   []string `toml:"extends,omitempty"`
	Highlight []string `toml:"highlight,omitempty"`
}

// File is the on-disk set of profiles, keyed by name.
type File struct {
	Profiles map[string]Profile `toml:"profile"`
}

// DefaultPath returns the default profiles file path.
func DefaultPath() string {
	return defaultProfilesPath
}

// Load reads profiles from path. A missing file yields an empty set.
func Load(path string) (File, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return File{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("open profiles: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return File{}, fmt.Errorf("read profiles: %w", err)
	}

	var f File
	if err := toml.Unmarshal(bytes, &f); err != nil {
		return File{}, fmt.Errorf("parse profiles: %w", err)
	}
	return f, nil
}

// Save writes profiles to path, creating directories as needed.
func Save(path string, f File) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	bytes, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}

// Names returns the profile names in sorted order.
func (f File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the named profile with its extends chain merged in. Parent
// highlights come first. An empty name resolves to the empty profile.
func (f File) Resolve(name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, nil
	}
	return f.resolve(name, nil)
}

func (f File) resolve(name string, visiting []string) (Profile, error) {
	if slices.Contains(visiting, name) {
		return Profile{}, fmt.Errorf("%s: %w", strings.Join(append(visiting, name), " -> "), ErrProfileCycle)
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%q: %w", name, ErrUnknownProfile)
	}

	visiting = append(visiting, name)
	merged := Profile{Comment: p.Comment}
	for _, parent := range p.Extends {
		resolved, err := f.resolve(parent, visiting)
		if err != nil {
			return Profile{}, err
		}
		merged.Highlight = appendUnique(merged.Highlight, resolved.Highlight...)
	}
	merged.Highlight = appendUnique(merged.Highlight, p.Highlight...)
	return merged, nil
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Example returns a starter profile set for `droidcat profiles init`.
func Example() File {
	return File{Profiles: map[string]Profile{
		"net": {
			Comment:   "Connectivity",
			Highlight: []string{"ConnectivityService", "NetworkMonitor", "wlan"},
		},
		"crash": {
			Comment:   "Crashes and ANRs",
			Highlight: []string{"FATAL EXCEPTION", "ANR in", "AndroidRuntime"},
		},
		"triage": {
			Comment: "Everything worth a second look",
			Extends: []string{"net", "crash"},
		},
	}}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultProfilesPath)
	}
	return config.ExpandPath(path)
}
