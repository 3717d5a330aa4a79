// Package report collects per-stream line statistics.
package report

// Reporter receives events about the streams being read. Implementations
// must be safe for concurrent use.
type Reporter interface {
	// Line is called for every returned line.
	Line(stream string, size int)
	// End is called once per stream; err is nil on a clean end of stream.
	End(stream string, err error)
	Close() error
}
