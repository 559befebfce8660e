package mmapfile

import "fmt"

// Flush forces all written data to stable storage. With SyncOnWrite on
// (the default) every mutating call already flushes; Flush is for callers
// that turned it off and batch their own sync points.
func (f *File) Flush() error {
	if f.closed {
		return ErrClosed
	}
	// Msync only the valid prefix; pages past the file length are not
	// backed by anything.
	if f.size > 0 {
		if err := syncRange(f.data[:f.size]); err != nil {
			return fmt.Errorf("msync %s: %w", f.path, err)
		}
	}
	// Sync covers the file length metadata that Truncate changes.
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", f.path, err)
	}
	return nil
}

// Close releases the reservation and closes the file. Operations on a
// closed File return ErrClosed; closing twice is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var firstErr error
	if err := unmapFile(f.data); err != nil {
		firstErr = fmt.Errorf("munmap %s: %w", f.path, err)
	}
	f.data = nil
	if err := f.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close %s: %w", f.path, err)
	}
	return firstErr
}
