package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"
)

var (
	// Set by LDFLAGS
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lazyseq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lazyseq [flags] [file]\n\nReads a JSON array from file (or stdin) and writes the transformed array.\n\n")
		fs.PrintDefaults()
	}

	showVersionFlag := fs.Bool("version", false, "show version and exit")
	verboseFlag := fs.Bool("verbose", false, "verbose mode - show debug logs")

	// Pipeline stages, applied in the order listed.
	flattenFlag := fs.Bool("flatten", false, "expand nested arrays")
	flattenDepthFlag := fs.Int("flatten-depth", 0, "with --flatten, the maximum number of nesting levels to expand (0: all)")
	uniqFlag := fs.Bool("uniq", false, "drop repeated values, keeping the first occurrence")
	withoutFlag := fs.StringArray("without", nil, "drop values equal to this JSON literal (repeatable)")
	sortFlag := fs.Bool("sort", false, "sort values: null, booleans, numbers, strings, then everything else")
	naturalFlag := fs.Bool("natural", false, "with --sort, order strings with embedded numbers by value")
	reverseFlag := fs.Bool("reverse", false, "reverse the order")
	shuffleFlag := fs.Bool("shuffle", false, "randomly permute the values")
	seedFlag := fs.Uint64("seed", 0, "with --shuffle, seed the permutation for reproducible output")
	dropFlag := fs.Int("drop", 0, "skip this many values")
	takeFlag := fs.Int("take", -1, "keep at most this many values (-1: all)")
	asyncDelayFlag := fs.Duration("async-delay", 0, "deliver values one at a time with this pause, printing one JSON value per line")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersionFlag {
		fmt.Fprintf(stdout, "version: %s, commit: %s, date: %s\n", version, commit, date)
		return nil
	}

	log := newLogger(stderr, *verboseFlag)

	without, err := parseLiterals(*withoutFlag)
	if err != nil {
		log.Error("failed to parse --without", "error", err)
		return err
	}

	cfg := &config{
		Logger:       log,
		Clock:        clockwork.NewRealClock(),
		Flatten:      *flattenFlag,
		FlattenDepth: *flattenDepthFlag,
		Uniq:         *uniqFlag,
		Without:      without,
		Sort:         *sortFlag,
		Natural:      *naturalFlag,
		Reverse:      *reverseFlag,
		Shuffle:      *shuffleFlag,
		Seed:         *seedFlag,
		Drop:         *dropFlag,
		Take:         *takeFlag,
		AsyncDelay:   *asyncDelayFlag,
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		log.Error("failed to read input", "error", err)
		return err
	}
	log.Debug("input loaded", "values", len(input))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cfg.Execute(ctx, input, stdout); err != nil {
		log.Error("pipeline failed", "error", err)
		return err
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var values []any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("input must be a JSON array: %w", err)
	}
	if values == nil {
		values = []any{}
	}
	return values, nil
}

func parseLiterals(raw []string) ([]any, error) {
	values := make([]any, 0, len(raw))
	for _, r := range raw {
		var v any
		if err := json.Unmarshal([]byte(r), &v); err != nil {
			return nil, fmt.Errorf("invalid JSON literal %q: %w", r, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(formatRFC3339Millis(t))
			}
			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func formatRFC3339Millis(t time.Time) string {
	t = t.UTC()
	base := t.Format("2006-01-02T15:04:05")
	ms := t.Nanosecond() / 1_000_000
	return fmt.Sprintf("%s.%03dZ", base, ms)
}
