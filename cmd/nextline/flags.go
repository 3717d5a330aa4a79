package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ozontech/nextline/linereader"
)

type ReaderFlags struct {
	ChunkSize   int `group:"reader" default:"${chunk_size}" help:"Bytes requested per read call."`
	MaxLineSize int `group:"reader" default:"${max_line_size}" help:"Longest accepted line in bytes, 0 is unlimited."`
}

func (f ReaderFlags) validate() error {
	if f.ChunkSize < 1 {
		return errors.New("--chunk-size must be positive")
	}
	if f.MaxLineSize < 0 {
		return errors.New("--max-line-size must not be negative")
	}
	return nil
}

func (f ReaderFlags) options(log *zap.Logger) []linereader.Option {
	return []linereader.Option{
		linereader.WithChunkSize(f.ChunkSize),
		linereader.WithMaxLineSize(f.MaxLineSize),
		linereader.WithLogger(log),
	}
}
