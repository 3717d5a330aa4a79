package linereader

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/multierr"
)

// Handle identifies an open byte stream. Negative handles are invalid.
type Handle int

// Streams is the read primitive the registry pulls data from.
// A read of 0 bytes with a nil error means end of stream.
type Streams interface {
	Read(h Handle, p []byte) (int, error)
}

type StreamsFunc func(h Handle, p []byte) (int, error)

func (f StreamsFunc) Read(h Handle, p []byte) (int, error) { return f(h, p) }

type readFunc func(p []byte) (int, error)

// maxConsecutiveEmptyReads is the same guard bufio uses against readers that
// keep returning 0, nil.
const maxConsecutiveEmptyReads = 100

// readChunk adapts io.Reader semantics to the read primitive: io.EOF becomes
// a plain short read, a non-EOF error fails the read even if some bytes
// arrived.
func readChunk(r io.Reader, p []byte) (int, error) {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.Read(p)
		switch {
		case err == nil && n == 0:
			continue
		case err == nil, errors.Is(err, io.EOF):
			return n, nil
		default:
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}

// ReaderStreams binds handles to io.Readers.
type ReaderStreams struct {
	mu      sync.RWMutex
	readers map[Handle]io.Reader
	next    Handle
}

func NewReaderStreams() *ReaderStreams {
	return &ReaderStreams{readers: make(map[Handle]io.Reader)}
}

// Attach registers r under the lowest never used handle.
func (s *ReaderStreams) Attach(r io.Reader) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		h := s.next
		s.next++
		if _, ok := s.readers[h]; !ok {
			s.readers[h] = r
			return h
		}
	}
}

func (s *ReaderStreams) AttachAt(h Handle, r io.Reader) error {
	if h < 0 {
		return ErrInvalidHandle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.readers[h]; ok {
		return fmt.Errorf("handle %d already attached", h)
	}
	s.readers[h] = r
	return nil
}

// Detach forgets the handle and closes the reader if it is an io.Closer.
func (s *ReaderStreams) Detach(h Handle) error {
	s.mu.Lock()
	r, ok := s.readers[h]
	delete(s.readers, h)
	s.mu.Unlock()

	if !ok {
		return ErrUnknownHandle
	}
	if c, ok := r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *ReaderStreams) Close() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for h, r := range s.readers {
		if c, ok := r.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
		delete(s.readers, h)
	}
	return err
}

func (s *ReaderStreams) Read(h Handle, p []byte) (int, error) {
	s.mu.RLock()
	r, ok := s.readers[h]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrUnknownHandle
	}
	return readChunk(r, p)
}
