// Package mmapfile treats a single file as a growable, byte-addressable
// region of memory. The file is mapped once at open time with a very large
// virtual reservation (1 TiB by default), so appends, overwrites, reads and
// tail truncation never re-establish the mapping; growth and shrinkage happen
// purely by changing the file's allocated length underneath the fixed
// reservation. The reservation is virtual address space only; it does not
// consume memory or disk beyond the file's actual length.
//
// The library assumes a single process and a single writer. No locking of any
// kind is performed, and no provision is made for another thread, process, or
// File instance accessing the same path concurrently. Every write operation
// flushes to stable storage before returning by default; see Options to trade
// that for batched flushing via Flush.
//
// Unix-like hosts only: the fixed-reservation design relies on mmap accepting
// a mapping longer than the file.
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	errors.go      – mapping-failure taxonomy & sentinel errors
//	file.go        – File type, constructors & bounds-checked accessor
//	io.go          – append/overwrite/read/truncate operations
//	flush_close.go – flush & close helpers
//	size.go        – lightweight state accessors
//	mmap_unix.go   – syscall layer (mmap/msync/munmap, errno translation)
//
// See the README for usage examples.
package mmapfile
