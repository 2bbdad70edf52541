package imgio

import (
	"fmt"
	"image"
	"os"

	"github.com/chai2010/tiff"

	"github.com/fluostack/fluostack/internal/tensor"
)

// TIFFCodec reads and writes grayscale TIFF files.
//
// Microscopy z-stacks are stored as multi-page TIFFs; a file with one page
// decodes to rank 2 (y, x) and a file with n > 1 pages to rank 3 (z, y, x).
type TIFFCodec struct{}

// Extensions returns the extension tags for TIFF.
func (*TIFFCodec) Extensions() []string { return []string{"tif", "tiff"} }

// Read decodes a TIFF file, including all pages.
func (*TIFFCodec) Read(path string) (*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pages, pageErrs, err := tiff.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tiff: %w", err)
	}

	var frames []*tensor.RawTensor
	for i := range pages {
		for j := range pages[i] {
			if pageErrs[i][j] != nil {
				return nil, fmt.Errorf("failed to decode tiff page %d/%d: %w", i, j, pageErrs[i][j])
			}
			frame, err := imageToTensor(pages[i][j])
			if err != nil {
				return nil, err
			}
			frames = append(frames, frame)
		}
	}

	switch len(frames) {
	case 0:
		return nil, fmt.Errorf("tiff contains no pages")
	case 1:
		return frames[0], nil
	default:
		vol, err := tensor.StackNew(frames)
		if err != nil {
			return nil, fmt.Errorf("tiff pages are not homogeneous: %w", err)
		}
		return vol, nil
	}
}

// Write encodes a rank-2 tensor as a single-page TIFF, or a rank-3 tensor
// as a multi-page TIFF with one page per leading-axis slice.
func (*TIFFCodec) Write(path string, raw *tensor.RawTensor) error {
	var pages []image.Image
	switch raw.Rank() {
	case 2:
		m, err := tensorToImage(raw)
		if err != nil {
			return err
		}
		pages = []image.Image{m}
	case 3:
		n := raw.Shape()[0]
		planeShape := raw.Shape()[1:].Clone()
		planeBytes := planeShape.NumElements() * raw.DType().Size()
		for z := 0; z < n; z++ {
			plane, err := tensor.FromBytes(planeShape, raw.DType(),
				raw.Data()[z*planeBytes:(z+1)*planeBytes])
			if err != nil {
				return err
			}
			m, err := tensorToImage(plane)
			if err != nil {
				return err
			}
			pages = append(pages, m)
		}
	default:
		return fmt.Errorf("tiff encode requires rank 2 or 3, got shape %v", raw.Shape())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	frames := make([][]image.Image, len(pages))
	for i, m := range pages {
		frames[i] = []image.Image{m}
	}
	if err := tiff.EncodeAll(f, frames, nil); err != nil {
		_ = f.Close() // Best effort close on error
		return fmt.Errorf("failed to encode tiff: %w", err)
	}
	return f.Close()
}
