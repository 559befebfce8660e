package mmapfile

// Size returns the current logical size in bytes. It always equals the
// backing file's allocated length.
func (f *File) Size() int64 { return f.size }

// Reservation returns the size of the virtual reservation established at
// open time. The file can never grow past it.
func (f *File) Reservation() int64 { return f.opts.Reservation }

// Path returns the path the File was opened with.
func (f *File) Path() string { return f.path }
