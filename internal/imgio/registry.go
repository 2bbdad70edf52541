package imgio

import (
	"sort"
	"strings"
	"sync"

	"github.com/fluostack/fluostack/internal/tensor"
)

// Codec decodes and encodes one format family.
type Codec interface {
	// Extensions returns the extension tags this codec claims, lowercase,
	// without a leading dot.
	Extensions() []string

	// Read decodes the file into a tensor.
	Read(path string) (*tensor.RawTensor, error)

	// Write encodes the tensor into a file.
	Write(path string, raw *tensor.RawTensor) error
}

// Registry dispatches reads and writes by file extension.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec for every extension it claims.
// A later registration for the same extension replaces the earlier one.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range c.Extensions() {
		r.codecs[strings.ToLower(ext)] = c
	}
}

// Lookup returns the codec registered for ext.
func (r *Registry) Lookup(ext string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[normalizeExt(ext)]
	if !ok {
		return nil, &UnsupportedFormatError{Ext: ext}
	}
	return c, nil
}

// Extensions returns the sorted set of registered extension tags.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Read decodes the file at path using the codec registered for ext.
func (r *Registry) Read(path, ext string) (*tensor.RawTensor, error) {
	c, err := r.Lookup(ext)
	if err != nil {
		return nil, err
	}
	raw, err := c.Read(path)
	if err != nil {
		return nil, &ReadError{Path: path, Ext: normalizeExt(ext), Err: err}
	}
	return raw, nil
}

// Write encodes raw into the file at path using the codec for ext.
func (r *Registry) Write(path, ext string, raw *tensor.RawTensor) error {
	c, err := r.Lookup(ext)
	if err != nil {
		return err
	}
	if err := c.Write(path, raw); err != nil {
		return &WriteError{Path: path, Ext: normalizeExt(ext), Err: err}
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry with all built-in codecs registered.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register(&TIFFCodec{})
		defaultRegistry.Register(&PNGCodec{})
		defaultRegistry.Register(&JPEGCodec{Quality: 95})
		defaultRegistry.Register(&NPYCodec{})
		defaultRegistry.Register(&NPZCodec{})
		defaultRegistry.Register(&CSVCodec{})
		defaultRegistry.Register(&DVCodec{})
	})
	return defaultRegistry
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
