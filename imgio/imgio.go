// Package imgio exports the extension-to-codec registry.
//
// Example:
//
//	raw, err := imgio.Read("cells_dapi.tif", "tif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(raw.Shape(), raw.DType())
package imgio

import (
	"github.com/fluostack/fluostack/internal/imgio"
	"github.com/fluostack/fluostack/internal/tensor"
)

// Codec decodes and encodes one format family.
type Codec = imgio.Codec

// Registry dispatches reads and writes by file extension.
type Registry = imgio.Registry

// Error types surfaced by the registry.
type (
	// UnsupportedFormatError reports an extension with no registered codec.
	UnsupportedFormatError = imgio.UnsupportedFormatError
	// ReadError reports a decode failure.
	ReadError = imgio.ReadError
	// WriteError reports an encode failure.
	WriteError = imgio.WriteError
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry { return imgio.NewRegistry() }

// Default returns the shared registry with all built-in codecs registered.
func Default() *Registry { return imgio.Default() }

// Read decodes the file at path using the default registry.
func Read(path, ext string) (*tensor.RawTensor, error) {
	return imgio.Default().Read(path, ext)
}

// Write encodes raw into the file at path using the default registry.
func Write(path, ext string, raw *tensor.RawTensor) error {
	return imgio.Default().Write(path, ext, raw)
}
