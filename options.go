package mmapfile

import "os"

// DefaultReservation is the size of the virtual address range reserved for a
// file at open time. The file may grow up to this size over the lifetime of
// the handle without the mapping ever being re-established.
const DefaultReservation int64 = 1 << 40 // 1 TiB

// Options provides configuration for a File.
//
//   - SyncOnWrite: flush to stable storage after every Append, Overwrite and
//     DropFromTail (the default). Turning this off trades durability per call
//     for throughput; the caller then batches with Flush.
//   - Reservation: size of the one-time virtual reservation in bytes. The
//     file can never grow past it. Zero is rejected; use DefaultOptions or
//     DefaultReservation.
//   - FileMode: permissions used when the file is created.
//
// See DefaultOptions() for the default values.
type Options struct {
	SyncOnWrite bool        // flush after every mutating call
	Reservation int64       // virtual reservation size in bytes
	FileMode    os.FileMode // mode for file creation
}

// DefaultOptions returns the configuration used by Open.
func DefaultOptions() Options {
	return Options{
		SyncOnWrite: true,
		Reservation: DefaultReservation,
		FileMode:    0o666,
	}
}
