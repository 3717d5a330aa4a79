package multi

import (
	"golang.org/x/sync/errgroup"

	"github.com/ozontech/nextline/report"
)

type Multi struct {
	nested []report.Reporter
}

func NewMulti(nested ...report.Reporter) *Multi {
	return &Multi{nested}
}

func (m *Multi) Line(stream string, size int) {
	for _, r := range m.nested {
		r.Line(stream, size)
	}
}

func (m *Multi) End(stream string, err error) {
	for _, r := range m.nested {
		r.End(stream, err)
	}
}

func (m *Multi) Close() error {
	g := new(errgroup.Group)
	for i := range m.nested {
		r := m.nested[i]
		g.Go(r.Close)
	}
	return g.Wait()
}
