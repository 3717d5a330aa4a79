package simple

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

type Reporter struct {
	w     io.Writer
	start time.Time

	mu      sync.Mutex
	streams map[string]*streamState

	lines atomic.Uint64
	size  atomic.Uint64
}

func New(w io.Writer) *Reporter {
	return &Reporter{
		w:       w,
		start:   time.Now(),
		streams: make(map[string]*streamState),
	}
}

func (a *Reporter) state(stream string) *streamState {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.streams[stream]
	if !ok {
		s = new(streamState)
		a.streams[stream] = s
	}
	return s
}

func (a *Reporter) Line(stream string, size int) {
	s := a.state(stream)
	s.lines.Add(1)
	s.size.Add(uint64(size))
	a.lines.Add(1)
	a.size.Add(uint64(size))
}

func (a *Reporter) End(stream string, err error) {
	s := a.state(stream)
	a.mu.Lock()
	s.err = err
	a.mu.Unlock()
}

// Close writes the per-stream and total summary.
func (a *Reporter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, 0, len(a.streams))
	for name := range a.streams {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := a.streams[name]
		if err := a.write(name, s.lines.Load(), s.size.Load(), s.err); err != nil {
			return err
		}
	}
	if len(names) < 2 {
		return nil
	}
	return a.write("total", a.lines.Load(), a.size.Load(), nil)
}

func (a *Reporter) write(name string, lines, size uint64, err error) error {
	status := "ok"
	if err != nil {
		status = err.Error()
	}
	_, werr := fmt.Fprintf(a.w, "%s lines=%d size=%s status=%s\n", name, lines, humanize.Bytes(size), status)
	return werr
}

// Elapsed returns time since the reporter creation and throughput in bytes
// per second.
func (a *Reporter) Elapsed() (time.Duration, string) {
	d := time.Since(a.start)
	miliSeconds := d.Milliseconds()
	if miliSeconds <= 0 {
		return d, humanize.Bytes(a.size.Load()) + "/s"
	}
	return d, humanize.Bytes(a.size.Load()*1000/uint64(miliSeconds)) + "/s"
}

type streamState struct {
	lines atomic.Uint64
	size  atomic.Uint64
	err   error
}
