package mmapfile

import "fmt"

// Append writes data at the current tail, growing the file by len(data)
// bytes, and flushes before returning (unless SyncOnWrite is off).
func (f *File) Append(data []byte) error {
	return f.AppendWith(int64(len(data)), func(w []byte) { copy(w, data) })
}

// AppendWith grows the file by n bytes and hands the freshly grown range, at
// offset equal to the previous size, to write for population. The file's
// allocated length is extended first, which makes the tail of the existing
// reservation valid to touch; the mapping itself never changes.
//
// n must not grow the file past the reservation; ErrReservationFull is
// returned and nothing changes. If extending the file fails, the size is
// left unchanged.
func (f *File) AppendWith(n int64, write func([]byte)) error {
	if f.closed {
		return ErrClosed
	}
	if n < 0 {
		return ErrOutOfRange
	}
	if n > int64(len(f.data))-f.size {
		return ErrReservationFull
	}

	if err := f.file.Truncate(f.size + n); err != nil {
		return fmt.Errorf("grow %s: %w", f.path, err)
	}
	write(f.data[f.size : f.size+n : f.size+n])
	f.size += n

	if f.opts.SyncOnWrite {
		return f.Flush()
	}
	return nil
}

// Overwrite replaces the bytes at [off, off+len(data)) with data and flushes
// before returning (unless SyncOnWrite is off). The size does not change.
//
// The whole range must lie within the current size; otherwise ErrOutOfRange
// is returned and nothing is written.
func (f *File) Overwrite(off int64, data []byte) error {
	return f.OverwriteWith(off, int64(len(data)), func(w []byte) { copy(w, data) })
}

// OverwriteWith hands the existing byte range [off, off+n) to write for
// in-place replacement, then flushes. The size does not change.
func (f *File) OverwriteWith(off, n int64, write func([]byte)) error {
	w, err := f.view(off, n)
	if err != nil {
		return err
	}
	write(w)

	if f.opts.SyncOnWrite {
		return f.Flush()
	}
	return nil
}

// DropFromTail shrinks the file by n bytes from the end and flushes. The
// dropped bytes are gone from the file; appending over the same range later
// does not restore them.
//
// n must not exceed the current size; otherwise ErrShrinkUnderflow is
// returned and nothing changes.
func (f *File) DropFromTail(n int64) error {
	if f.closed {
		return ErrClosed
	}
	if n < 0 || n > f.size {
		return ErrShrinkUnderflow
	}

	if err := f.file.Truncate(f.size - n); err != nil {
		return fmt.Errorf("shrink %s: %w", f.path, err)
	}
	f.size -= n

	if f.opts.SyncOnWrite {
		return f.Flush()
	}
	return nil
}

// Read copies the bytes at [off, off+n) into a freshly allocated buffer.
// Reads never flush.
func (f *File) Read(off, n int64) ([]byte, error) {
	// Validate before allocating so a bad range is rejected rather than
	// sizing a buffer from it.
	r, err := f.view(off, n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, r)
	return buf, nil
}

// ReadWith hands the byte range [off, off+n) to read for consumption without
// copying. The slice is only valid for the duration of the callback and must
// not be written to or retained.
func (f *File) ReadWith(off, n int64, read func([]byte)) error {
	r, err := f.view(off, n)
	if err != nil {
		return err
	}
	read(r)
	return nil
}
