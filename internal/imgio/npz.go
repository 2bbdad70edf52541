package imgio

import (
	"archive/zip"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fluostack/fluostack/internal/tensor"
)

// NPZCodec reads and writes NumPy .npz archives (a zip of .npy members).
//
// An acquisition layer is one array; on read the codec takes the "arr_0"
// member when present, otherwise the first member in name order.
type NPZCodec struct{}

// Extensions returns the extension tags for NumPy archives.
func (*NPZCodec) Extensions() []string { return []string{"npz"} }

// Read decodes the primary array member of a .npz archive.
func (*NPZCodec) Read(path string) (*tensor.RawTensor, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open npz archive: %w", err)
	}
	defer zr.Close()

	var names []string
	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".npy") {
			continue
		}
		names = append(names, f.Name)
		byName[f.Name] = f
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("npz archive contains no npy members")
	}
	sort.Strings(names)

	name := names[0]
	if _, ok := byName["arr_0.npy"]; ok {
		name = "arr_0.npy"
	}

	member, err := byName[name].Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open npz member %q: %w", name, err)
	}
	defer member.Close()

	raw, err := readNPY(member)
	if err != nil {
		return nil, fmt.Errorf("npz member %q: %w", name, err)
	}
	return raw, nil
}

// Write encodes raw as a .npz archive with a single "arr_0" member.
func (*NPZCodec) Write(path string, raw *tensor.RawTensor) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(f)
	member, err := zw.Create("arr_0.npy")
	if err != nil {
		_ = zw.Close()
		_ = f.Close() // Best effort close on error
		return fmt.Errorf("failed to create npz member: %w", err)
	}
	if err := writeNPY(member, raw); err != nil {
		_ = zw.Close()
		_ = f.Close() // Best effort close on error
		return err
	}
	if err := zw.Close(); err != nil {
		_ = f.Close() // Best effort close on error
		return fmt.Errorf("failed to finalize npz archive: %w", err)
	}
	return f.Close()
}
