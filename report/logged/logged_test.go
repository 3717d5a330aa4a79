package logged

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogged(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	core, logs := observer.New(zap.DebugLevel)
	r := New(zap.New(core))
	r.Line("a.txt", 3)
	r.End("a.txt", nil)
	r.End("b.txt", errors.New("boom"))
	a.NoError(r.Close())

	entries := logs.All()
	a.Len(entries, 3)
	a.Equal("line", entries[0].Message)
	a.Equal(int64(3), entries[0].ContextMap()["size"])
	a.Equal("stream done", entries[1].Message)
	a.Equal("stream failed", entries[2].Message)
	a.Equal("boom", entries[2].ContextMap()["error"])
}
