//go:build unix

package linereader

import (
	"golang.org/x/sys/unix"
)

// FDStreams reads straight from OS file descriptors; the handle is the fd.
type FDStreams struct{}

func (FDStreams) Read(h Handle, p []byte) (int, error) {
	for {
		n, err := unix.Read(int(h), p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}
