//go:build unix

package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

const maxInt = int64(^uint(0) >> 1)

// mapFile establishes the virtual reservation: a single shared read/write
// mapping of length bytes backed by f, starting at offset 0. length may far
// exceed the file's current size; only pages within the file's length are
// valid to touch.
func mapFile(f *os.File, length int64) ([]byte, error) {
	if length > maxInt {
		// The reservation cannot be addressed on this host.
		return nil, &MapError{Kind: MapErrNoMem}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, translateMapErr(err)
	}
	return data, nil
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}

func syncRange(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// translateMapErr turns the raw mmap errno into the package's closed set of
// mapping-failure kinds.
func translateMapErr(err error) *MapError {
	errno, ok := err.(unix.Errno)
	if !ok {
		return &MapError{Kind: MapErrUnknown, Errno: -1}
	}
	switch errno {
	case unix.EACCES:
		return &MapError{Kind: MapErrFdUnavailable, Errno: int(errno)}
	case unix.EBADF:
		return &MapError{Kind: MapErrInvalidFd, Errno: int(errno)}
	case unix.EINVAL:
		return &MapError{Kind: MapErrUnaligned, Errno: int(errno)}
	case unix.ENODEV:
		return &MapError{Kind: MapErrNoMapSupport, Errno: int(errno)}
	case unix.ENOMEM:
		return &MapError{Kind: MapErrNoMem, Errno: int(errno)}
	default:
		return &MapError{Kind: MapErrUnknown, Errno: int(errno)}
	}
}
