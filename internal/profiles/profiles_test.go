package profiles

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	f, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(f.Profiles) != 0 {
		t.Fatalf("Profiles = %v, want none", f.Profiles)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "droidcat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := `
[profile.wifi]
comment = "Wifi"
highlight = ["wlan", "WifiService"]
`
	if err := os.WriteFile(filepath.Join(dir, "profiles.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	p, err := f.Resolve("wifi")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if want := []string{"wlan", "WifiService"}; !reflect.DeepEqual(p.Highlight, want) {
		t.Fatalf("Highlight = %v, want %v", p.Highlight, want)
	}
	if p.Comment != "Wifi" {
		t.Fatalf("Comment = %q, want Wifi", p.Comment)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "profiles.toml")
	if err := Save(path, Example()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := []string{"crash", "net", "triage"}; !reflect.DeepEqual(loaded.Names(), want) {
		t.Fatalf("Names = %v, want %v", loaded.Names(), want)
	}
}

func TestResolve_MergesExtendsParentsFirst(t *testing.T) {
	f := File{Profiles: map[string]Profile{
		"base":  {Highlight: []string{"a", "b"}},
		"other": {Highlight: []string{"c"}},
		"child": {Extends: []string{"base", "other"}, Highlight: []string{"b", "d"}},
	}}
	p, err := f.Resolve("child")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(p.Highlight, want) {
		t.Fatalf("Highlight = %v, want %v", p.Highlight, want)
	}
}

func TestResolve_EmptyName(t *testing.T) {
	p, err := File{}.Resolve("  ")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(p.Highlight) != 0 {
		t.Fatalf("Highlight = %v, want none", p.Highlight)
	}
}

func TestResolve_Errors(t *testing.T) {
	f := File{Profiles: map[string]Profile{
		"a":      {Extends: []string{"b"}},
		"b":      {Extends: []string{"a"}},
		"broken": {Extends: []string{"missing"}},
	}}
	if _, err := f.Resolve("nope"); !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("Resolve(nope) error = %v, want ErrUnknownProfile", err)
	}
	if _, err := f.Resolve("broken"); !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("Resolve(broken) error = %v, want ErrUnknownProfile", err)
	}
	if _, err := f.Resolve("a"); !errors.Is(err, ErrProfileCycle) {
		t.Fatalf("Resolve(a) error = %v, want ErrProfileCycle", err)
	}
}
