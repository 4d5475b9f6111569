package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/five82/droidcat/internal/config"
	"github.com/five82/droidcat/internal/profiles"
	"github.com/five82/droidcat/internal/record"
	"github.com/five82/droidcat/internal/terminal"
)

func isolatedOptions(t *testing.T) Options {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return Options{
		ConfigPath:   filepath.Join(home, "config.toml"),
		ProfilesPath: filepath.Join(home, "profiles.toml"),
		Width:        100,
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagFormat, "human", "")
	flags.Bool(FlagMonochrome, false, "")
	flags.Bool(FlagShowDate, false, "")
	flags.Int(FlagTagWidth, 0, "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return flags
}

func TestTerminalOptions_Defaults(t *testing.T) {
	opts, err := TerminalOptions(config.Resolver{}, profiles.Profile{}, nil, 90)
	if err != nil {
		t.Fatalf("TerminalOptions returned error: %v", err)
	}
	want := terminal.Options{
		Format:        record.Human,
		Color:         true,
		TimeDiffWidth: 8,
		Highlight:     []string{},
		Width:         90,
	}
	if !reflect.DeepEqual(opts, want) {
		t.Fatalf("TerminalOptions = %#v, want %#v", opts, want)
	}
}

func TestTerminalOptions_ProfileHighlightsAreExtended(t *testing.T) {
	profile := profiles.Profile{Highlight: []string{"wlan"}}
	opts, err := TerminalOptions(config.Resolver{}, profile, []string{"ANR"}, 0)
	if err != nil {
		t.Fatalf("TerminalOptions returned error: %v", err)
	}
	if want := []string{"wlan", "ANR"}; !reflect.DeepEqual(opts.Highlight, want) {
		t.Fatalf("Highlight = %v, want %v", opts.Highlight, want)
	}
}

func TestTerminalOptions_FlagBeatsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "terminal_monochrome = true\nterminal_show_date = true\nterminal_format = \"csv\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	store, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	r := config.Resolver{Flags: newFlags(t, "--show-date=false", "--tag-width=18"), Store: store}
	opts, err := TerminalOptions(r, profiles.Profile{}, nil, 0)
	if err != nil {
		t.Fatalf("TerminalOptions returned error: %v", err)
	}
	if opts.Color {
		t.Fatalf("Color = true, want config monochrome")
	}
	if opts.ShowDate {
		t.Fatalf("ShowDate = true, want explicit flag false")
	}
	if opts.TagWidth != 18 {
		t.Fatalf("TagWidth = %d, want 18", opts.TagWidth)
	}
	if opts.Format != record.CSV {
		t.Fatalf("Format = %v, want csv from config", opts.Format)
	}
}

func TestTerminalOptions_UnknownFormat(t *testing.T) {
	r := config.Resolver{Flags: newFlags(t, "--format=xml")}
	if _, err := TerminalOptions(r, profiles.Profile{}, nil, 0); err == nil {
		t.Fatalf("TerminalOptions returned nil error, want unknown format")
	}
}

func TestRun_RendersStdin(t *testing.T) {
	opts := isolatedOptions(t)
	var out bytes.Buffer
	opts.Stdout = &out
	opts.Flags = newFlags(t, "--monochrome")
	opts.Stdin = strings.NewReader(`{"tag":"NET","process":"app","level":"I","message":"connected"}` + "\n")

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := strings.Repeat(" ", 36) + "NET (app)  I    connected\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRun_HTMLFailsBeforeReading(t *testing.T) {
	opts := isolatedOptions(t)
	opts.Stdout = &bytes.Buffer{}
	opts.Flags = newFlags(t, "--format=html")
	opts.Stdin = failingReader{t: t}

	err := Run(context.Background(), opts)
	if !errors.Is(err, terminal.ErrUnsupportedFormat) {
		t.Fatalf("Run error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRun_UnknownProfile(t *testing.T) {
	opts := isolatedOptions(t)
	opts.Stdout = &bytes.Buffer{}
	opts.Stdin = strings.NewReader("")
	opts.Profile = "missing"

	if err := Run(context.Background(), opts); !errors.Is(err, profiles.ErrUnknownProfile) {
		t.Fatalf("Run error = %v, want ErrUnknownProfile", err)
	}
}

func TestRun_TailInputFile(t *testing.T) {
	opts := isolatedOptions(t)
	var out bytes.Buffer
	opts.Stdout = &out
	opts.Flags = newFlags(t, "--format=raw")
	opts.Input = filepath.Join(t.TempDir(), "records.ndjson")
	opts.Tail = 2
	if err := os.WriteFile(opts.Input, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.String() != "two\nthree\n" {
		t.Fatalf("output = %q, want last two lines", out.String())
	}
}

func TestRun_CancelledContextStops(t *testing.T) {
	opts := isolatedOptions(t)
	opts.Stdout = &bytes.Buffer{}
	opts.Stdin = blockingReader{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRun_WriteFailureStopsStream(t *testing.T) {
	opts := isolatedOptions(t)
	opts.Stdout = brokenPipe{}
	opts.Stdin = strings.NewReader("a\nb\n")

	if err := Run(context.Background(), opts); err == nil {
		t.Fatalf("Run returned nil error, want write failure")
	}
}

type failingReader struct{ t *testing.T }

func (r failingReader) Read([]byte) (int, error) {
	r.t.Errorf("input read before configuration was validated")
	return 0, errors.New("unexpected read")
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) { select {} }

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }
