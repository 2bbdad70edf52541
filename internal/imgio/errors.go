package imgio

import "fmt"

// UnsupportedFormatError reports a file extension with no registered codec.
type UnsupportedFormatError struct {
	Ext string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: no codec registered for extension %q", e.Ext)
}

// ReadError reports a decode failure, surfaced unchanged from the codec.
type ReadError struct {
	Path string
	Ext  string
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s (%s): %v", e.Path, e.Ext, e.Err)
}

// Unwrap returns the underlying codec error.
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports an encode failure, surfaced unchanged from the codec.
type WriteError struct {
	Path string
	Ext  string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s (%s): %v", e.Path, e.Ext, e.Err)
}

// Unwrap returns the underlying codec error.
func (e *WriteError) Unwrap() error { return e.Err }
