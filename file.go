package mmapfile

import (
	"fmt"
	"os"
)

// File exposes a single on-disk file as a growable byte region backed by one
// fixed virtual memory reservation.
//
// A File owns its path exclusively: it must be the only instance, thread and
// process touching the file for as long as it is open.
type File struct {
	file   *os.File
	data   []byte // the reservation; len(data) == opts.Reservation
	size   int64  // current logical size; always equals the file's length
	path   string
	opts   Options
	closed bool
}

// Open maps the file at path with the default options, creating it if
// absent. An existing file is never truncated; its current length becomes
// the initial size.
func Open(path string) (*File, error) {
	return OpenWithOptions(path, DefaultOptions())
}

// OpenWithOptions maps the file at path with custom options.
//
// On mapping failure the raw host error code is translated into a *MapError;
// open and stat failures are returned as wrapped I/O errors. Either the
// returned File is fully constructed or nothing is retained.
func OpenWithOptions(path string, opts Options) (*File, error) {
	if opts.Reservation == 0 {
		return nil, &MapError{Kind: MapErrZeroLength}
	}
	if opts.Reservation < 0 {
		return nil, &MapError{Kind: MapErrUnaligned}
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0o666
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, opts.FileMode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := mapFile(f, opts.Reservation)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		file: f,
		data: data,
		size: fi.Size(),
		path: path,
		opts: opts,
	}, nil
}

// view returns the mapped bytes [off, off+n) after validating the range
// against the current size. Every operation in the package goes through
// here, so the bounds invariant is enforced in exactly one place.
func (f *File) view(off, n int64) ([]byte, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if off < 0 || n < 0 || n > f.size || off > f.size-n {
		return nil, ErrOutOfRange
	}
	return f.data[off : off+n : off+n], nil
}
