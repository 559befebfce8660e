//go:build !unix

package mmapfile

import "os"

// The fixed-reservation design needs mmap to accept a mapping longer than
// the file. The Windows file-mapping API grows the file to the mapping
// object's size instead, which would break the size/length invariant, so
// non-Unix hosts are not served.

func mapFile(f *os.File, length int64) ([]byte, error) {
	return nil, &MapError{Kind: MapErrNoMapSupport}
}

func unmapFile(data []byte) error { return nil }

func syncRange(data []byte) error { return nil }
