package linereader

import (
	"bytes"
)

const nChar = '\n'

// Carry holds bytes already read from a stream but not yet returned as a line.
type Carry struct {
	buf []byte
	// scanned bytes of buf are known to contain no newline.
	scanned int
}

func (c *Carry) Len() int { return len(c.buf) }

// join appends a raw chunk to the carry. The chunk itself is not retained.
func (c *Carry) join(chunk []byte) {
	c.buf = append(c.buf, chunk...)
}

// boundary returns the index of the first newline or -1.
func (c *Carry) boundary() int {
	idx := bytes.IndexByte(c.buf[c.scanned:], nChar)
	if idx < 0 {
		c.scanned = len(c.buf)
		return -1
	}
	return c.scanned + idx
}

// extract returns a fresh copy of the next line: everything up to and
// including the newline at idx, or the whole carry when idx < 0.
// An empty carry yields nil.
func (c *Carry) extract(idx int) []byte {
	if len(c.buf) == 0 {
		return nil
	}
	end := len(c.buf)
	if idx >= 0 {
		end = idx + 1
	}
	line := make([]byte, end)
	copy(line, c.buf[:end])
	return line
}

// keepLeftover drops the extracted line and moves the remainder to the
// front of the buffer.
func (c *Carry) keepLeftover(idx int) {
	c.scanned = 0
	if idx < 0 || idx == len(c.buf)-1 {
		c.buf = c.buf[:0]
		return
	}
	n := copy(c.buf, c.buf[idx+1:])
	c.buf = c.buf[:n]
}

func (c *Carry) release() {
	c.buf = nil
	c.scanned = 0
}

// fill reads chunks into the carry until it holds a newline or the stream
// is exhausted. The newline check goes first so a carry that already holds a
// line issues no read at all.
func (c *Carry) fill(read readFunc, chunk []byte, maxLineSize int) (int, error) {
	for {
		idx := c.boundary()
		if maxLineSize > 0 && (idx >= maxLineSize || idx < 0 && len(c.buf) > maxLineSize) {
			return -1, ErrLineTooLong
		}
		if idx >= 0 {
			return idx, nil
		}

		n, err := read(chunk)
		if err != nil {
			return -1, &ReadError{err}
		}
		if n == 0 {
			return -1, nil
		}
		c.join(chunk[:n])
	}
}

// next assembles one line. nil, nil means end of stream with nothing
// buffered. On any error the carry is released.
func (c *Carry) next(read readFunc, chunk []byte, maxLineSize int) ([]byte, error) {
	idx, err := c.fill(read, chunk, maxLineSize)
	if err != nil {
		c.release()
		return nil, err
	}

	line := c.extract(idx)
	if line == nil {
		c.release()
		return nil, nil
	}
	c.keepLeftover(idx)
	return line, nil
}
