package linereader

import (
	"go.uber.org/zap"

	"github.com/ozontech/nextline/consts"
	"github.com/ozontech/nextline/linereader/store"
)

type conf struct {
	chunkSize   int
	maxLineSize int
	log         *zap.Logger
	store       store.Store[Handle, *Carry]
}

func newDefaultConf() conf {
	return conf{
		chunkSize:   consts.DefaultChunkSize,
		maxLineSize: consts.DefaultMaxLineSize,
		log:         zap.NewNop(),
	}
}

type Option func(*conf)

// WithChunkSize sets how many bytes are requested per read. A non-positive
// value makes every call fail with ErrInvalidChunkSize.
func WithChunkSize(size int) Option {
	return func(c *conf) {
		c.chunkSize = size
	}
}

// WithMaxLineSize limits the length of a line, newline included. A longer
// line fails with ErrLineTooLong and the bytes buffered for it are dropped.
// 0 disables the limit.
func WithMaxLineSize(size int) Option {
	return func(c *conf) {
		c.maxLineSize = size
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *conf) {
		c.log = log
	}
}

// WithStore replaces the registry carry storage. The store must return what
// was Set, pending bytes live there between calls. Ignored by Reader.
func WithStore(s store.Store[Handle, *Carry]) Option {
	return func(c *conf) {
		c.store = s
	}
}

func buildConf(opts []Option) conf {
	conf := newDefaultConf() //nolint:govet
	for _, o := range opts {
		if o != nil {
			o(&conf)
		}
	}
	if conf.log == nil {
		conf.log = zap.NewNop()
	}
	return conf
}
