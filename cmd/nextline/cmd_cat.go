package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mailru/easyjson/jwriter"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ozontech/nextline/consts"
	"github.com/ozontech/nextline/linereader"
	"github.com/ozontech/nextline/linereader/store"
	"github.com/ozontech/nextline/report"
	"github.com/ozontech/nextline/report/logged"
	"github.com/ozontech/nextline/report/multi"
	"github.com/ozontech/nextline/report/simple"
)

const stdinName = "-"

var errDuplicateFile = errors.New("file given more than once")

type CatCommand struct {
	Files []string `arg:"" optional:"" type:"path" help:"Files to read (default is stdin)"`

	Interleave bool `help:"Print one line of every file per turn."`
	JSON       bool `name:"json" help:"Print every line as a JSON object."`
	Stats      bool `help:"Print per file statistics to stderr."`

	Shards uint64 `group:"reader" default:"${shards}" help:"Shards of the per file state store, a power of two."`

	ReaderFlags
}

func (c *CatCommand) Validate() error {
	if c.Shards&(c.Shards-1) != 0 {
		return errors.New("--shards must be a power of two")
	}
	if err := checkUnique(c.Files); err != nil {
		return err
	}
	return c.ReaderFlags.validate()
}

func (c *CatCommand) Run(ctx context.Context, log *zap.Logger) error {
	return c.run(ctx, log, os.Stdout, os.Stderr)
}

type catStream struct {
	name string
	file *os.File
	h    linereader.Handle
	n    int
}

func (c *CatCommand) run(ctx context.Context, log *zap.Logger, stdout, stderr io.Writer) (err error) {
	log = log.Named("cat")

	names := c.Files
	if len(names) == 0 {
		names = []string{stdinName}
	}
	if err := checkUnique(names); err != nil {
		return err
	}
	streams, err := openStreams(names)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeStreams(streams)) }()

	shards := c.Shards
	if shards == 0 {
		shards = consts.DefaultShards
	}
	carries := store.NewSharded[linereader.Handle, *linereader.Carry](shards, func() store.Store[linereader.Handle, *linereader.Carry] {
		return store.NewMap[linereader.Handle, *linereader.Carry](consts.DefaultStoreSize / int(shards))
	})
	reg := linereader.NewRegistry(
		linereader.FDStreams{},
		append(c.options(log), linereader.WithStore(carries))...,
	)

	reporters := []report.Reporter{logged.New(log)}
	if c.Stats {
		reporters = append(reporters, simple.New(stderr))
	}
	var reporter report.Reporter = multi.NewMulti(reporters...)
	defer func() { err = multierr.Append(err, reporter.Close()) }()

	w := bufio.NewWriter(stdout)
	defer func() { err = multierr.Append(err, w.Flush()) }()
	p := printer{w: w, json: c.JSON}

	perTurn := -1
	if c.Interleave {
		perTurn = 1
	}

	active := append([]*catStream(nil), streams...)
	for len(active) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := active[:0]
		for _, s := range active {
			done, readErr := c.drain(reg, s, perTurn, p, reporter)
			if readErr != nil {
				log.Error("read failed", zap.String("file", s.name), zap.Error(readErr))
				err = multierr.Append(err, fmt.Errorf("%s: %w", s.name, readErr))
			}
			if done {
				reg.Forget(s.h)
				continue
			}
			next = append(next, s)
		}
		active = next
	}
	return err
}

// drain prints up to limit lines of s, all of them if limit < 0.
// done reports that s has nothing more to give.
func (c *CatCommand) drain(
	reg *linereader.Registry,
	s *catStream,
	limit int,
	p printer,
	reporter report.Reporter,
) (done bool, err error) {
	for i := 0; limit < 0 || i < limit; i++ {
		line, err := reg.ReadLine(s.h)
		if errors.Is(err, io.EOF) {
			reporter.End(s.name, nil)
			return true, nil
		}
		if err != nil {
			reporter.End(s.name, err)
			return true, err
		}

		s.n++
		reporter.Line(s.name, len(line))
		if err = p.print(s.name, s.n, line); err != nil {
			return true, err
		}
	}
	return false, nil
}

// checkUnique rejects a file, stdin included, given more than once: both
// entries would share one fd state and one report entry.
func checkUnique(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := name
		if name != stdinName {
			key = filepath.Clean(name)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%s: %w", name, errDuplicateFile)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func openStreams(names []string) ([]*catStream, error) {
	streams := make([]*catStream, 0, len(names))
	for _, name := range names {
		f := os.Stdin
		if name != stdinName {
			var err error
			f, err = os.Open(name)
			if err != nil {
				return nil, multierr.Append(
					fmt.Errorf("open %s: %w", name, err),
					closeStreams(streams),
				)
			}
		}
		streams = append(streams, &catStream{
			name: name,
			file: f,
			h:    linereader.Handle(f.Fd()),
		})
	}
	return streams, nil
}

func closeStreams(streams []*catStream) (err error) {
	for _, s := range streams {
		if s.file == os.Stdin {
			continue
		}
		err = multierr.Append(err, s.file.Close())
	}
	return err
}

type printer struct {
	w    io.Writer
	json bool
}

func (p printer) print(name string, n int, line []byte) error {
	if !p.json {
		_, err := p.w.Write(line)
		return err
	}

	jw := jwriter.Writer{}
	jw.RawString(`{"file":`)
	jw.String(name)
	jw.RawString(`,"n":`)
	jw.Int(n)
	jw.RawString(`,"line":`)
	jw.String(string(line))
	jw.RawString("}\n")
	if jw.Error != nil {
		return jw.Error
	}
	_, err := jw.DumpTo(p.w)
	return err
}
