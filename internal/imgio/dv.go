package imgio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/fluostack/fluostack/internal/tensor"
)

// DV (DeltaVision) layout, an extended MRC container:
//
//	[1024 bytes: fixed header]
//	[next bytes: extended header]
//	[voxel data: nsec * ny * nx elements, little-endian]
//
// Fixed header fields used here (byte offsets):
//
//	0   int32 nx     columns (x)
//	4   int32 ny     rows (y)
//	8   int32 nsec   total sections
//	12  int32 mode   pixel type
//	92  int32 next   extended header size
//	96  int16 dvid   file stamp, 0xc0a0 for little-endian files

const (
	dvHeaderSize = 1024
	dvStamp      int16 = -16224 // 0xc0a0 as int16
)

// DV pixel modes.
const (
	dvModeUint8   = 0
	dvModeFloat32 = 2
	dvModeUint16  = 6
)

// DVCodec reads DeltaVision microscopy volumes.
//
// Sections are returned as the z axis of a (z, y, x) tensor; multi-wavelength
// or multi-timepoint files should be split per channel upstream, which is how
// recipe-driven acquisitions store them. Writing is not supported.
type DVCodec struct{}

// Extensions returns the extension tags for DeltaVision.
func (*DVCodec) Extensions() []string { return []string{"dv"} }

// Read decodes a DeltaVision file into a (z, y, x) tensor.
func (*DVCodec) Read(path string) (*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, dvHeaderSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, fmt.Errorf("failed to read dv header: %w", err)
	}

	stamp := int16(binary.LittleEndian.Uint16(header[96:98]))
	if stamp != dvStamp {
		return nil, fmt.Errorf("invalid dv stamp: got %#04x, want %#04x", uint16(stamp), uint16(int(dvStamp)&0xffff))
	}

	nx := int32(binary.LittleEndian.Uint32(header[0:4]))
	ny := int32(binary.LittleEndian.Uint32(header[4:8]))
	nsec := int32(binary.LittleEndian.Uint32(header[8:12]))
	mode := int32(binary.LittleEndian.Uint32(header[12:16]))
	extSize := int32(binary.LittleEndian.Uint32(header[92:96]))

	if nx <= 0 || ny <= 0 || nsec <= 0 || extSize < 0 {
		return nil, fmt.Errorf("invalid dv dimensions: nx=%d ny=%d nsec=%d next=%d", nx, ny, nsec, extSize)
	}

	var dtype tensor.DataType
	switch mode {
	case dvModeUint8:
		dtype = tensor.Uint8
	case dvModeFloat32:
		dtype = tensor.Float32
	case dvModeUint16:
		dtype = tensor.Uint16
	default:
		return nil, fmt.Errorf("unsupported dv pixel mode %d", mode)
	}

	if _, err := f.Seek(int64(dvHeaderSize+extSize), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek past dv extended header: %w", err)
	}

	shape := tensor.Shape{int(nsec), int(ny), int(nx)}
	data := make([]byte, shape.NumElements()*dtype.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("failed to read dv voxel data: %w", err)
	}

	return tensor.FromBytes(shape, dtype, data)
}

// Write is not supported for DeltaVision files.
func (*DVCodec) Write(path string, raw *tensor.RawTensor) error {
	return fmt.Errorf("dv encoding is not supported")
}
