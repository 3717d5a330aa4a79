package linereader

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"testing"
)

func benchInput() []byte {
	var b bytes.Buffer
	for i := 0; i < 10_000; i++ {
		b.WriteString("line number ")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func BenchmarkReader(b *testing.B) {
	in := benchInput()
	for _, chunkSize := range []int{16, 1024, 64 * 1024} {
		b.Run(strconv.Itoa(chunkSize), func(b *testing.B) {
			b.SetBytes(int64(len(in)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r := NewReader(bytes.NewReader(in), WithChunkSize(chunkSize))
				for {
					_, err := r.ReadNext()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkLongLine(b *testing.B) {
	in := append(bytes.Repeat([]byte{'x'}, 1<<20), '\n')
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewReader(bytes.NewReader(in), WithChunkSize(64))
		if line := r.Next(); len(line) != len(in) {
			b.Fatalf("got %d bytes", len(line))
		}
	}
}
