package mmapfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// helper to create a mapped file in a temporary directory
func newTestFile(t *testing.T) (*File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	f, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	return f, path
}

// checkDisk verifies the file's on-disk bytes through a plain read, bypassing
// the mapping entirely.
func checkDisk(t *testing.T, path string, want []byte) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back %s: %v", path, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("on-disk content mismatch: got %q want %q", got, want)
	}
}

func TestOpenCreatesEmptyFile(t *testing.T) {
	f, path := newTestFile(t)
	defer f.Close()

	if f.Size() != 0 {
		t.Fatalf("expected size 0 on fresh file, got %d", f.Size())
	}
	if f.Reservation() != DefaultReservation {
		t.Fatalf("expected default reservation, got %d", f.Reservation())
	}
	if f.Path() != path {
		t.Fatalf("expected path %q, got %q", path, f.Path())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created on disk: %v", err)
	}
}

func TestOpenExistingDoesNotTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	content := []byte("persisted content")
	if err := os.WriteFile(path, content, 0o666); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open existing: %v", err)
	}
	defer f.Close()

	if f.Size() != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), f.Size())
	}
	got, err := f.Read(0, f.Size())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("content mismatch: got %q want %q", got, content)
	}
}

func TestReopenPersistence(t *testing.T) {
	f, path := newTestFile(t)

	if err := f.Append([]byte("hello, world")); err != nil {
		t.Fatalf("append: %v", err)
	}
	sizeBefore := f.Size()
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if reopened.Size() != sizeBefore {
		t.Fatalf("size not recomputed from file length: got %d want %d", reopened.Size(), sizeBefore)
	}
	got, err := reopened.Read(0, reopened.Size())
	if err != nil {
		t.Fatalf("read after reopen: %v", err)
	}
	if !bytes.Equal(got, []byte("hello, world")) {
		t.Fatalf("content mismatch after reopen: %q", got)
	}
}

func TestClosedOperations(t *testing.T) {
	f, _ := newTestFile(t)
	if err := f.Append([]byte("x")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// second close is a no-op
	if err := f.Close(); err != nil {
		t.Fatalf("double close: %v", err)
	}

	if err := f.Append([]byte("y")); !errors.Is(err, ErrClosed) {
		t.Fatalf("append on closed: got %v want ErrClosed", err)
	}
	if _, err := f.Read(0, 1); !errors.Is(err, ErrClosed) {
		t.Fatalf("read on closed: got %v want ErrClosed", err)
	}
	if err := f.Overwrite(0, []byte("y")); !errors.Is(err, ErrClosed) {
		t.Fatalf("overwrite on closed: got %v want ErrClosed", err)
	}
	if err := f.DropFromTail(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("drop on closed: got %v want ErrClosed", err)
	}
	if err := f.Flush(); !errors.Is(err, ErrClosed) {
		t.Fatalf("flush on closed: got %v want ErrClosed", err)
	}
}

func TestReservationOptions(t *testing.T) {
	dir := t.TempDir()

	opts := DefaultOptions()
	opts.Reservation = 0
	_, err := OpenWithOptions(filepath.Join(dir, "zero.bin"), opts)
	var me *MapError
	if !errors.As(err, &me) || me.Kind != MapErrZeroLength {
		t.Fatalf("zero reservation: got %v, want MapErrZeroLength", err)
	}

	opts.Reservation = -1
	_, err = OpenWithOptions(filepath.Join(dir, "neg.bin"), opts)
	if !errors.As(err, &me) || me.Kind != MapErrUnaligned {
		t.Fatalf("negative reservation: got %v, want MapErrUnaligned", err)
	}

	// a tiny reservation works but caps growth
	opts.Reservation = 8
	f, err := OpenWithOptions(filepath.Join(dir, "tiny.bin"), opts)
	if err != nil {
		t.Fatalf("open with tiny reservation: %v", err)
	}
	defer f.Close()

	if err := f.Append([]byte("12345678")); err != nil {
		t.Fatalf("append up to reservation: %v", err)
	}
	if err := f.Append([]byte("9")); !errors.Is(err, ErrReservationFull) {
		t.Fatalf("append past reservation: got %v want ErrReservationFull", err)
	}
	if f.Size() != 8 {
		t.Fatalf("size changed by rejected append: %d", f.Size())
	}
}
