package multi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/ozontech/nextline/report/logged"
	"github.com/ozontech/nextline/report/simple"
)

func TestMulti(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	b1, b2 := new(bytes.Buffer), new(bytes.Buffer)
	m := NewMulti(simple.New(b1), logged.New(zaptest.NewLogger(t)), simple.New(b2))
	m.Line("f", 5)
	m.End("f", nil)
	a.NoError(m.Close())

	a.Equal("f lines=1 size=5 B status=ok\n", b1.String())
	a.Equal(b1.String(), b2.String())
}
