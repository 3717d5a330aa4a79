package linereader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarryExtract(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	var c Carry
	a.Nil(c.extract(-1))

	c.join([]byte("abc\ndef"))
	idx := c.boundary()
	a.Equal(3, idx)

	line := c.extract(idx)
	a.Equal("abc\n", string(line))

	// the line must not share memory with the carry
	line[0] = 'X'
	a.Equal("abc\ndef", string(c.buf))

	c.keepLeftover(idx)
	a.Equal("def", string(c.buf))
	a.Equal(-1, c.boundary())
	a.Equal("def", string(c.extract(-1)))
}

func TestCarryLeftover(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       string
		leftover string
	}{
		{"newline last", "abc\n", ""},
		{"no newline", "abc", ""},
		{"remainder", "a\nbc\nd", "bc\nd"},
		{"only newlines", "\n\n", "\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var c Carry
			c.join([]byte(tc.in))
			c.keepLeftover(c.boundary())
			assert.Equal(t, tc.leftover, string(c.buf))
			assert.Equal(t, 0, c.scanned)
		})
	}
}

func TestCarryBoundaryIncremental(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	var c Carry
	c.join([]byte("aaaa"))
	a.Equal(-1, c.boundary())
	a.Equal(4, c.scanned)

	c.join([]byte("bb\ncc"))
	a.Equal(6, c.boundary())
}

func TestCarryFillStopsOnNewline(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	var reads int
	read := func(p []byte) (int, error) {
		reads++
		return copy(p, "x\n"), nil
	}

	var c Carry
	c.join([]byte("buffered\n"))
	idx, err := c.fill(read, make([]byte, 4), 0)
	a.NoError(err)
	a.Equal(8, idx)
	a.Equal(0, reads)
}
