// Command minic runs a MiniC source file: a small imperative language
// that is a strict subset of C.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-minic/minic/internal/logio"
	"github.com/go-minic/minic/internal/minic"
)

func main() {
	var (
		trace       bool
		dump        bool
		timeout     time.Duration
		watch       bool
		watchPoll   time.Duration
		maxProgSize int
		maxLocals   int
	)
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a symbol table dump after execution")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&watch, "watch", false, "re-run whenever the source file changes")
	flag.DurationVar(&watchPoll, "watch-poll", time.Second, "poll interval for -watch")
	flag.IntVar(&maxProgSize, "max-prog-size", 0, "override the source size limit (0 = default)")
	flag.IntVar(&maxLocals, "max-locals", 0, "override the local variable stack limit (0 = default)")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	if flag.NArg() != 1 {
		log.Errorf("usage: minic [flags] <source.mc>")
		return
	}
	path := flag.Arg(0)

	limits := minic.DefaultLimits()
	if maxProgSize > 0 {
		limits.ProgSize = maxProgSize
	}
	if maxLocals > 0 {
		limits.NumLocalVars = maxLocals
	}

	opts := []minic.Option{
		minic.WithInput(os.Stdin),
		minic.WithOutput(os.Stdout),
		minic.WithLimits(limits),
	}
	if trace {
		opts = append(opts, minic.WithLogf(log.Leveledf("TRACE")))
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runOnce := func(ctx context.Context) error {
		ip := minic.New(opts...)
		if err := ip.LoadFile(path); err != nil {
			return err
		}
		err := ip.Run(ctx)
		if dump {
			minic.Dumper{Interp: ip, Out: os.Stderr}.Dump()
		}
		return err
	}

	if !watch {
		log.ErrorIf(runOnce(ctx))
		return
	}

	log.ErrorIf(watchAndRun(ctx, path, watchPoll, runOnce))
}

// watchAndRun supervises two goroutines — a poller that watches path
// for modifications, and the interpreter run itself — under a single
// errgroup so that either's error cancels the shared context and
// unblocks the other promptly.
func watchAndRun(ctx context.Context, path string, poll time.Duration, runOnce func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	changed := make(chan struct{})
	g.Go(func() error { return pollForChanges(ctx, path, poll, changed) })
	g.Go(func() error {
		for {
			if err := runOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "run error: %v\n", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func pollForChanges(ctx context.Context, path string, poll time.Duration, changed chan<- struct{}) error {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				select {
				case changed <- struct{}{}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}
