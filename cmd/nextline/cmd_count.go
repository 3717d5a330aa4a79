package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ozontech/nextline/linereader"
	"github.com/ozontech/nextline/report"
	"github.com/ozontech/nextline/report/logged"
	"github.com/ozontech/nextline/report/multi"
	"github.com/ozontech/nextline/report/simple"
)

type CountCommand struct {
	Files   []string `arg:"" required:"" type:"existingfile" help:"Files to count."`
	Threads int      `default:"0" help:"Files counted at once, 0 means GOMAXPROCS."`

	ReaderFlags
}

func (c *CountCommand) Validate() error {
	if c.Threads < 0 {
		return errors.New("--threads must not be negative")
	}
	if err := checkUnique(c.Files); err != nil {
		return err
	}
	return c.ReaderFlags.validate()
}

func (c *CountCommand) Run(ctx context.Context, log *zap.Logger) error {
	return c.run(ctx, log, os.Stdout)
}

func (c *CountCommand) run(ctx context.Context, log *zap.Logger, stdout io.Writer) error {
	log = log.Named("count")
	if err := checkUnique(c.Files); err != nil {
		return err
	}
	summary := simple.New(stdout)
	reporter := multi.NewMulti(summary, logged.New(log))

	threads := c.Threads
	if threads == 0 {
		threads = runtime.GOMAXPROCS(-1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for _, name := range c.Files {
		name := name
		g.Go(func() error {
			err := c.countFile(ctx, name, reporter, log)
			reporter.End(name, err)
			return err
		})
	}

	err := g.Wait()
	elapsed, speed := summary.Elapsed()
	log.Info("count done", zap.Duration("elapsed", elapsed), zap.String("speed", speed))
	return multierr.Append(err, reporter.Close())
}

// countFile uses its own Reader, so files never share a carry.
func (c *CountCommand) countFile(ctx context.Context, name string, reporter report.Reporter, log *zap.Logger) (err error) {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	r := linereader.NewReader(f, c.options(log.With(zap.String("file", name)))...)
	err = r.Each(func(line []byte) error {
		reporter.Line(name, len(line))
		return ctx.Err()
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
