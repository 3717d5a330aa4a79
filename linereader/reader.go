// Package linereader returns successive newline terminated lines from byte
// streams, reading them in fixed size chunks.
//
// Every returned line is a fresh slice owned by the caller and keeps its
// trailing '\n'. The last line of a stream is returned without one when the
// stream does not end with a newline.
package linereader

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// Reader reads lines from a single io.Reader.
type Reader struct {
	read  readFunc
	carry Carry
	chunk []byte

	maxLineSize int
	log         *zap.Logger
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	conf := buildConf(opts)
	rd := &Reader{
		read:        func(p []byte) (int, error) { return readChunk(r, p) },
		maxLineSize: conf.maxLineSize,
		log:         conf.log.Named("linereader"),
	}
	if conf.chunkSize > 0 {
		rd.chunk = make([]byte, conf.chunkSize)
	}
	return rd
}

// ReadNext returns the next line or io.EOF once the stream is exhausted.
// After ErrLineTooLong or a *ReadError the buffered data is gone; following
// calls continue with whatever the stream yields next.
func (r *Reader) ReadNext() ([]byte, error) {
	if len(r.chunk) == 0 {
		return nil, ErrInvalidChunkSize
	}

	line, err := r.carry.next(r.read, r.chunk, r.maxLineSize)
	if err != nil {
		r.log.Debug("line dropped", zap.Error(err))
		return nil, err
	}
	if line == nil {
		return nil, io.EOF
	}
	return line, nil
}

// Next is ReadNext without the error: nil means there is no line, either
// because the stream ended or because reading failed.
func (r *Reader) Next() []byte {
	line, _ := r.ReadNext()
	return line
}

// Buffered returns the number of bytes read but not yet returned.
func (r *Reader) Buffered() int { return r.carry.Len() }

// Each calls fn for every line until the stream ends. io.EOF is not
// reported.
func (r *Reader) Each(fn func(line []byte) error) error {
	for {
		line, err := r.ReadNext()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(line); err != nil {
			return err
		}
	}
}
