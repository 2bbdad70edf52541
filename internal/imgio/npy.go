package imgio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sbinet/npyio"

	"github.com/fluostack/fluostack/internal/tensor"
)

// NPYCodec reads and writes NumPy .npy arrays of arbitrary rank.
//
// Reading goes through npyio. Writing emits the v1.0 header by hand because
// npyio's writer does not carry an N-dimensional shape.
type NPYCodec struct{}

// Extensions returns the extension tags for NumPy arrays.
func (*NPYCodec) Extensions() []string { return []string{"npy"} }

// Read decodes a .npy file.
func (*NPYCodec) Read(path string) (*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readNPY(f)
}

// Write encodes raw as a .npy file.
func (*NPYCodec) Write(path string, raw *tensor.RawTensor) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeNPY(f, raw); err != nil {
		_ = f.Close() // Best effort close on error
		return err
	}
	return f.Close()
}

func readNPY(r io.Reader) (*tensor.RawTensor, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse npy header: %w", err)
	}

	if nr.Header.Descr.Fortran {
		return nil, fmt.Errorf("fortran-order npy arrays are not supported")
	}

	shape := tensor.Shape(nr.Header.Descr.Shape).Clone()
	dtype, err := dataTypeFromDescr(nr.Header.Descr.Type)
	if err != nil {
		return nil, err
	}

	n := shape.NumElements()
	switch dtype {
	case tensor.Uint8:
		data := make([]uint8, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	case tensor.Uint16:
		data := make([]uint16, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	case tensor.Int32:
		data := make([]int32, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	case tensor.Int64:
		data := make([]int64, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	case tensor.Float32:
		data := make([]float32, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	case tensor.Float64:
		data := make([]float64, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	case tensor.Bool:
		data := make([]bool, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read npy data: %w", err)
		}
		return tensor.FromSlice(data, shape)
	default:
		return nil, fmt.Errorf("unsupported npy dtype %q", nr.Header.Descr.Type)
	}
}

// dataTypeFromDescr maps a numpy descr string (e.g. "<u2", "|u1") to a DataType.
func dataTypeFromDescr(descr string) (tensor.DataType, error) {
	base := strings.TrimLeft(descr, "<|=")
	if strings.HasPrefix(descr, ">") {
		return 0, fmt.Errorf("big-endian npy dtype %q is not supported", descr)
	}
	switch base {
	case "u1":
		return tensor.Uint8, nil
	case "u2":
		return tensor.Uint16, nil
	case "i4":
		return tensor.Int32, nil
	case "i8":
		return tensor.Int64, nil
	case "f4":
		return tensor.Float32, nil
	case "f8":
		return tensor.Float64, nil
	case "b1":
		return tensor.Bool, nil
	default:
		return 0, fmt.Errorf("unsupported npy dtype %q", descr)
	}
}

// descrFromDataType is the inverse of dataTypeFromDescr.
func descrFromDataType(dtype tensor.DataType) (string, error) {
	switch dtype {
	case tensor.Uint8:
		return "|u1", nil
	case tensor.Uint16:
		return "<u2", nil
	case tensor.Int32:
		return "<i4", nil
	case tensor.Int64:
		return "<i8", nil
	case tensor.Float32:
		return "<f4", nil
	case tensor.Float64:
		return "<f8", nil
	case tensor.Bool:
		return "|b1", nil
	default:
		return "", fmt.Errorf("no npy descr for dtype %s", dtype)
	}
}

// writeNPY emits the npy v1.0 format:
// magic, version, uint16 LE header length, python dict header padded to a
// 64-byte boundary, then the raw little-endian element bytes.
func writeNPY(w io.Writer, raw *tensor.RawTensor) error {
	descr, err := descrFromDataType(raw.DType())
	if err != nil {
		return err
	}

	var dims []string
	for _, d := range raw.Shape() {
		dims = append(dims, fmt.Sprintf("%d", d))
	}
	shapeRepr := strings.Join(dims, ", ")
	if len(dims) == 1 {
		shapeRepr += ","
	}

	header := fmt.Sprintf("{'descr': %q, 'fortran_order': False, 'shape': (%s), }",
		descr, shapeRepr)
	header = strings.ReplaceAll(header, `"`, "'")

	// Pad so that magic+version+len+header is a multiple of 64, newline last.
	base := 6 + 2 + 2
	pad := 64 - (base+len(header)+1)%64
	if pad == 64 {
		pad = 0
	}
	header = header + strings.Repeat(" ", pad) + "\n"

	if _, err := w.Write([]byte("\x93NUMPY\x01\x00")); err != nil {
		return err
	}
	hlen := len(header)
	if _, err := w.Write([]byte{byte(hlen), byte(hlen >> 8)}); err != nil {
		return err
	}
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	_, err = w.Write(raw.Data())
	return err
}
