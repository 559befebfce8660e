package mmapfile

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by operations on an open File.
var (
	// ErrOutOfRange is returned when a requested byte range extends past the
	// file's current size.
	ErrOutOfRange = errors.New("mmapfile: range exceeds current file size")

	// ErrShrinkUnderflow is returned when DropFromTail is asked to remove
	// more bytes than the file contains.
	ErrShrinkUnderflow = errors.New("mmapfile: drop length exceeds current file size")

	// ErrReservationFull is returned when an append would grow the file past
	// the virtual reservation established at open time.
	ErrReservationFull = errors.New("mmapfile: append exceeds virtual reservation")

	// ErrClosed is returned when operating on a closed File.
	ErrClosed = errors.New("mmapfile: file is closed")
)

// MapErrKind identifies a category of mapping-establishment failure. The set
// is closed; which kinds can actually occur depends on the host platform.
type MapErrKind int

const (
	// MapErrUnknown carries an unrecognized host error code.
	MapErrUnknown MapErrKind = iota

	// MapErrFdUnavailable: the descriptor is not open for reading or, for a
	// writable mapping, not open for writing (POSIX EACCES).
	MapErrFdUnavailable

	// MapErrInvalidFd: the descriptor is not valid (POSIX EBADF).
	MapErrInvalidFd

	// MapErrUnaligned: address or offset not a multiple of the page size,
	// invalid flags, or a negative length (POSIX EINVAL).
	MapErrUnaligned

	// MapErrNoMapSupport: the underlying storage does not support memory
	// mapping (POSIX ENODEV).
	MapErrNoMapSupport

	// MapErrNoMem: address space or memory resources exhausted
	// (POSIX ENOMEM).
	MapErrNoMem

	// MapErrZeroLength: a zero-length mapping was requested. POSIX forbids
	// this; not every host enforces it, but this library does.
	MapErrZeroLength

	// MapErrUnsupportedProt: unsupported combination of protection flags
	// (Windows hosts).
	MapErrUnsupportedProt

	// MapErrUnsupportedOffset: a file offset was given where the host does
	// not support one (Windows hosts).
	MapErrUnsupportedOffset

	// MapErrAlreadyExists: a mapping for the file already exists
	// (Windows hosts).
	MapErrAlreadyExists
)

// MapError describes a failure to establish the virtual mapping at open
// time. It is produced only by Open and OpenWithOptions; no other operation
// in the package returns it.
type MapError struct {
	Kind  MapErrKind
	Errno int // raw host error code for code-carrying kinds
}

func (e *MapError) Error() string {
	switch e.Kind {
	case MapErrFdUnavailable:
		return "mmapfile: fd not available for reading or writing"
	case MapErrInvalidFd:
		return "mmapfile: invalid fd"
	case MapErrUnaligned:
		return "mmapfile: unaligned address, invalid flags, negative length or unaligned offset"
	case MapErrNoMapSupport:
		return "mmapfile: file doesn't support mapping"
	case MapErrNoMem:
		return "mmapfile: invalid address, or not enough available memory"
	case MapErrZeroLength:
		return "mmapfile: zero-length mapping not allowed"
	case MapErrUnsupportedProt:
		return "mmapfile: protection mode unsupported"
	case MapErrUnsupportedOffset:
		return "mmapfile: offset in virtual memory mode is unsupported"
	case MapErrAlreadyExists:
		return "mmapfile: file mapping for specified file already exists"
	default:
		return fmt.Sprintf("mmapfile: unknown mapping error = %d", e.Errno)
	}
}
