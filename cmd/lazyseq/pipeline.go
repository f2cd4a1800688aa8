package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"

	"lazyseq/seqs"
)

type config struct {
	Logger *slog.Logger
	Clock  clockwork.Clock

	// Optional stages; the zero value leaves the input unchanged.
	Flatten      bool
	FlattenDepth int
	Uniq         bool
	Without      []any
	Sort         bool
	Natural      bool
	Reverse      bool
	Shuffle      bool
	Seed         uint64
	Drop         int
	Take         int // < 0 keeps everything
	AsyncDelay   time.Duration
}

func (c *config) Validate() error {
	if c.Logger == nil {
		return errors.New("logger is required")
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.FlattenDepth < 0 {
		return errors.New("flatten depth must be >= 0")
	}
	if c.FlattenDepth > 0 && !c.Flatten {
		return errors.New("flatten depth requires --flatten")
	}
	if c.Natural && !c.Sort {
		return errors.New("natural ordering requires --sort")
	}
	if c.Seed != 0 && !c.Shuffle {
		return errors.New("seed requires --shuffle")
	}
	if c.Drop < 0 {
		return errors.New("drop must be >= 0")
	}
	if c.AsyncDelay < 0 {
		return errors.New("async delay must be >= 0")
	}
	return nil
}

// Pipeline chains the configured stages over input. Nothing runs until the result is consumed.
func (c *config) Pipeline(input []any) seqs.Sequence[any] {
	var s seqs.Sequence[any] = seqs.FromSlice(input)

	if c.Flatten {
		if c.FlattenDepth > 0 {
			s = seqs.FlattenDepth(s, c.FlattenDepth)
		} else {
			s = seqs.Flatten(s)
		}
	}
	if c.Uniq {
		s = seqs.Uniq(s)
	}
	if len(c.Without) > 0 {
		s = seqs.Without(s, c.Without...)
	}
	if c.Sort {
		compareStrings := strings.Compare
		if c.Natural {
			compareStrings = seqs.NaturalCompare
		}
		s = seqs.SortFunc(s, func(a, b any) int {
			return compareValues(a, b, compareStrings)
		})
	}
	if c.Reverse {
		s = seqs.Reverse(s)
	}
	if c.Shuffle {
		if c.Seed != 0 {
			s = seqs.ShuffleWith(s, rand.New(rand.NewPCG(c.Seed, c.Seed)))
		} else {
			s = seqs.Shuffle(s)
		}
	}
	if c.Drop > 0 {
		s = seqs.Drop(s, c.Drop)
	}
	if c.Take >= 0 {
		s = seqs.Take(s, c.Take)
	}
	return s
}

// Execute runs the pipeline over input and writes the result to w: a single JSON array, or
// with an async delay one JSON value per line as each is delivered.
func (c *config) Execute(ctx context.Context, input []any, w io.Writer) error {
	s := c.Pipeline(input)
	enc := json.NewEncoder(w)

	if c.AsyncDelay <= 0 {
		return enc.Encode(seqs.ToSlice(s))
	}

	var writeErr error
	h := seqs.Async(s,
		seqs.WithDelay(c.AsyncDelay),
		seqs.WithClock(c.Clock),
		seqs.WithLogger(c.Logger),
	).Each(func(v any) seqs.Signal {
		if err := enc.Encode(v); err != nil {
			writeErr = err
			return seqs.Stop
		}
		c.Logger.Debug("value delivered", "value", v)
		return seqs.Continue
	})

	if err := h.Wait(ctx); err != nil {
		h.Cancel()
		return fmt.Errorf("async delivery: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("writing output: %w", writeErr)
	}
	return nil
}

// valueRank orders JSON value kinds: null, booleans, numbers, strings, then arrays and objects.
func valueRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64, int, int64:
		return 2
	case string:
		return 3
	}
	return 4
}

func compareValues(a, b any, compareStrings func(a, b string) int) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch x := a.(type) {
	case nil:
		return 0
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case string:
		return compareStrings(x, b.(string))
	}
	if ra == 2 {
		return cmp.Compare(toFloat(a), toFloat(b))
	}
	// arrays and objects have no natural order; compare their encodings
	return strings.Compare(encode(a), encode(b))
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	}
	return 0
}

func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
