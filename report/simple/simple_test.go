package simple

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimple(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	b := new(bytes.Buffer)
	r := New(b)
	r.Line("b.txt", 10)
	r.Line("a.txt", 1000)
	r.Line("a.txt", 24)
	r.End("a.txt", nil)
	r.End("b.txt", errors.New("read: boom"))
	a.NoError(r.Close())

	a.Equal(
		"a.txt lines=2 size=1.0 kB status=ok\n"+
			"b.txt lines=1 size=10 B status=read: boom\n"+
			"total lines=3 size=1.0 kB status=ok\n",
		b.String(),
	)
}

func TestSimpleSingleStream(t *testing.T) {
	t.Parallel()

	b := new(bytes.Buffer)
	r := New(b)
	r.Line("-", 3)
	r.End("-", nil)
	assert.NoError(t, r.Close())
	assert.Equal(t, "- lines=1 size=3 B status=ok\n", b.String())
}
