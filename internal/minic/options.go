package minic

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/go-minic/minic/internal/flushio"
	"github.com/go-minic/minic/internal/runeio"
)

// Option configures an Interp at construction time, following the same
// functional-options shape used throughout this codebase's teacher
// lineage: each Option is opaque, and New applies them in order after a
// set of sane defaults.
type Option interface{ apply(ip *Interp) }

type optionFunc func(ip *Interp)

func (f optionFunc) apply(ip *Interp) { f(ip) }

var defaultOptions = Options(
	WithInput(bytes.NewReader(nil)),
	WithOutput(ioutil.Discard),
	WithLimits(DefaultLimits()),
)

// Options flattens any number of Option values into one, the same way
// multiple functional options are typically combined.
func Options(opts ...Option) Option {
	return optionFunc(func(ip *Interp) {
		for _, opt := range opts {
			if opt != nil {
				opt.apply(ip)
			}
		}
	})
}

// WithInput sets the interpreter's standard input stream, read a rune
// at a time by getche and a line at a time by getnum.
func WithInput(r io.Reader) Option {
	return optionFunc(func(ip *Interp) {
		ip.in = runeio.NewReader(r)
	})
}

// WithOutput sets the interpreter's standard output stream, buffered
// and flushed before any blocking read.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(ip *Interp) {
		if ip.out != nil {
			ip.out.Flush()
		}
		ip.out = flushio.NewWriteFlusher(w)
	})
}

// WithLogf installs a leveled trace logging function, called for every
// cursor advance, token fetch, and call/return event. Without this
// option the interpreter logs nothing.
func WithLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(ip *Interp) {
		ip.logfn = logf
	})
}

// WithLimits overrides the fixed-capacity table sizes, primarily so
// tests can shrink them to exercise capacity errors cheaply.
func WithLimits(limits Limits) Option {
	return optionFunc(func(ip *Interp) {
		ip.limits = limits
	})
}

// New constructs an Interp, applying defaultOptions first and then opts
// in order.
func New(opts ...Option) *Interp {
	var ip Interp
	defaultOptions.apply(&ip)
	Options(opts...).apply(&ip)
	return &ip
}

// LoadSource implements §4.1: it copies src into a new buffer sized to
// it, replacing a trailing legacy 0x1A EOF marker with a null
// terminator, or appending one if absent. If src exceeds the configured
// ProgSize limit it returns a plain error, not a diagnostic Error, and
// loads nothing.
func (ip *Interp) LoadSource(src []byte) error {
	limit := ip.limits.ProgSize
	if limit == 0 {
		limit = DefaultLimits().ProgSize
	}
	if len(src) > limit {
		return fmt.Errorf("source is %d bytes, exceeds limit of %d", len(src), limit)
	}

	buf := make([]byte, len(src), len(src)+1)
	copy(buf, src)
	if n := len(buf); n > 0 && buf[n-1] == 0x1A {
		buf[n-1] = 0
	} else {
		buf = append(buf, 0)
	}
	ip.buf = buf
	ip.prog = 0
	return nil
}

// LoadFile reads path and loads it via LoadSource.
func (ip *Interp) LoadFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return ip.LoadSource(data)
}
