package linereader

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ozontech/nextline/consts"
	"github.com/ozontech/nextline/linereader/store"
	"github.com/ozontech/nextline/utils/pool"
)

// Registry reads lines from many streams, keeping a separate carry per
// handle. Calls for different handles may interleave freely; calls for the
// same handle must not run concurrently.
type Registry struct {
	streams Streams
	carries store.Store[Handle, *Carry]
	chunks  *pool.BytesPool

	chunkSize   int
	maxLineSize int
	log         *zap.Logger
}

func NewRegistry(streams Streams, opts ...Option) *Registry {
	conf := buildConf(opts)
	r := &Registry{
		streams:     streams,
		carries:     conf.store,
		chunkSize:   conf.chunkSize,
		maxLineSize: conf.maxLineSize,
		log:         conf.log.Named("linereader"),
	}
	if r.carries == nil {
		r.carries = store.NewMap[Handle, *Carry](consts.DefaultStoreSize)
	}
	if r.chunkSize > 0 {
		r.chunks = pool.NewBytesPool(r.chunkSize)
	}
	return r
}

// ReadLine returns the next line of h. Outcomes:
//   - line, nil;
//   - nil, io.EOF when the stream is exhausted and nothing is buffered;
//   - nil, ErrInvalidHandle or ErrInvalidChunkSize, state untouched;
//   - nil, ErrLineTooLong or an error wrapping *ReadError, the carry of h is
//     released.
func (r *Registry) ReadLine(h Handle) ([]byte, error) {
	if h < 0 {
		return nil, ErrInvalidHandle
	}
	if r.chunkSize < 1 {
		return nil, ErrInvalidChunkSize
	}

	c, ok := r.carries.GetAndDelete(h)
	if !ok {
		c = new(Carry)
	}

	chunk := r.chunks.Acquire()
	defer r.chunks.Release(chunk)

	read := func(p []byte) (int, error) { return r.streams.Read(h, p) }
	line, err := c.next(read, chunk, r.maxLineSize)
	if err != nil {
		log := r.log.Debug
		if !errors.Is(err, ErrLineTooLong) {
			log = r.log.Warn
		}
		log("carry released", zap.Int("handle", int(h)), zap.Error(err))
		return nil, fmt.Errorf("handle %d: %w", h, err)
	}
	if line == nil {
		return nil, io.EOF
	}

	r.carries.Set(h, c)
	return line, nil
}

// GetNextLine returns the next line of h or nil when there is none,
// whatever the reason.
func (r *Registry) GetNextLine(h Handle) []byte {
	line, _ := r.ReadLine(h)
	return line
}

// Forget drops the carry of h. Call it when the stream is closed; bytes
// still buffered are lost.
func (r *Registry) Forget(h Handle) {
	if c, ok := r.carries.GetAndDelete(h); ok && c.Len() > 0 {
		r.log.Debug("pending bytes discarded", zap.Int("handle", int(h)), zap.Int("bytes", c.Len()))
	}
}

// Pending returns how many bytes of h are buffered but not yet returned.
func (r *Registry) Pending(h Handle) int {
	c, ok := r.carries.Get(h)
	if !ok {
		return 0
	}
	return c.Len()
}

// Len returns the number of handles holding state.
func (r *Registry) Len() int { return r.carries.Len() }
