package ioformats

import "errors"

// ErrIO tags export failures that stem from the underlying writer rather
// than the graph; callers wrap it around file-system errors when routing
// exporter output to disk.
var ErrIO = errors.New("ioformats: i/o failure")
