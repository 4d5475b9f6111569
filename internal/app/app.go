package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/five82/droidcat/internal/config"
	"github.com/five82/droidcat/internal/logging"
	"github.com/five82/droidcat/internal/profiles"
	"github.com/five82/droidcat/internal/record"
	"github.com/five82/droidcat/internal/source"
	"github.com/five82/droidcat/internal/terminal"
)

// Flag names shared with the CLI.
const (
	FlagFormat        = "format"
	FlagMonochrome    = "monochrome"
	FlagHideTimestamp = "hide-timestamp"
	FlagNoDimm        = "no-dimm"
	FlagShortenTags   = "shorten-tags"
	FlagShowDate      = "show-date"
	FlagTagWidth      = "tag-width"
	FlagShowTimeDiff  = "show-time-diff"
	FlagTimeDiffWidth = "time-diff-width"
)

const defaultTimeDiffWidth = 8

// Options configure a rendering session.
type Options struct {
	ConfigPath   string
	ProfilesPath string
	Profile      string
	Highlight    []string
	Input        string // empty reads Stdin
	Tail         int    // render only the last Tail records once the input ends
	Width        int    // zero detects the width of Stdout

	Flags  *pflag.FlagSet // explicitly set flags win over the config file
	Stdin  io.Reader
	Stdout io.Writer
}

// Run renders records from the input until it ends, the context is cancelled
// or a write fails.
func Run(ctx context.Context, opts Options) error {
	logger := logging.New("app")

	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	profileSet, err := profiles.Load(opts.ProfilesPath)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	profile, err := profileSet.Resolve(opts.Profile)
	if err != nil {
		return fmt.Errorf("select profile: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	width := opts.Width
	if width <= 0 {
		if f, ok := stdout.(*os.File); ok {
			width = terminal.DetectWidth(f)
		}
	}

	termOpts, err := TerminalOptions(config.Resolver{Flags: opts.Flags, Store: store}, profile, opts.Highlight, width)
	if err != nil {
		return err
	}
	term, err := terminal.New(stdout, termOpts)
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	logger.Debug("session ready", "config", store.Path(), "profile", opts.Profile, "format", termOpts.Format, "width", width)

	dec, closeInput, err := openInput(opts)
	if err != nil {
		return err
	}
	defer closeInput()

	return consume(ctx, startFeeder(ctx, dec), term)
}

// TerminalOptions resolves renderer options from flags, config and profile.
// Profile highlights come first and are extended by extra.
func TerminalOptions(r config.Resolver, profile profiles.Profile, extra []string, width int) (terminal.Options, error) {
	format, err := record.ParseFormat(r.String(FlagFormat, config.KeyFormat, record.Human.String()))
	if err != nil {
		return terminal.Options{}, fmt.Errorf("resolve format: %w", err)
	}

	highlight := make([]string, 0, len(profile.Highlight)+len(extra))
	highlight = append(highlight, profile.Highlight...)
	highlight = append(highlight, extra...)

	return terminal.Options{
		Format:        format,
		Color:         !r.Bool(FlagMonochrome, config.KeyMonochrome, false),
		HideTimestamp: r.Bool(FlagHideTimestamp, config.KeyHideTimestamp, false),
		NoDimm:        r.Bool(FlagNoDimm, config.KeyNoDimm, false),
		ShortenTags:   r.Bool(FlagShortenTags, config.KeyShortenTags, false),
		ShowDate:      r.Bool(FlagShowDate, config.KeyShowDate, false),
		TagWidth:      r.Int(FlagTagWidth, config.KeyTagWidth, 0),
		ShowTimeDiff:  r.Bool(FlagShowTimeDiff, config.KeyShowTimeDiff, false),
		TimeDiffWidth: r.Int(FlagTimeDiffWidth, config.KeyTimeDiffWidth, defaultTimeDiffWidth),
		Highlight:     highlight,
		Width:         width,
	}, nil
}

func openInput(opts Options) (*source.Decoder, func(), error) {
	var input io.Reader = os.Stdin
	if opts.Stdin != nil {
		input = opts.Stdin
	}
	closeInput := func() {}
	if opts.Input != "" {
		file, err := os.Open(opts.Input)
		if err != nil {
			return nil, closeInput, fmt.Errorf("open input: %w", err)
		}
		input = file
		closeInput = func() { _ = file.Close() }
	}
	if opts.Tail <= 0 {
		return source.NewDecoder(input), closeInput, nil
	}
	dec, err := source.NewTailDecoder(input, opts.Tail)
	return dec, closeInput, err
}

func consume(ctx context.Context, feed <-chan feedItem, term *terminal.Terminal) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case item, ok := <-feed:
			if !ok {
				return nil
			}
			if errors.Is(item.err, io.EOF) {
				return nil
			}
			if item.err != nil {
				return item.err
			}
			if err := term.Render(item.rec); err != nil {
				return fmt.Errorf("render record: %w", err)
			}
		}
	}
}
