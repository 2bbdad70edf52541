package imgio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/fluostack/fluostack/internal/tensor"
)

// imageToTensor converts a decoded frame to a rank-2 (y, x) tensor.
// Grayscale frames map directly; anything else is reduced through the
// Gray16 color model.
func imageToTensor(m image.Image) (*tensor.RawTensor, error) {
	bounds := m.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	shape := tensor.Shape{h, w}

	switch im := m.(type) {
	case *image.Gray:
		raw, err := tensor.NewRaw(shape, tensor.Uint8)
		if err != nil {
			return nil, err
		}
		dst := raw.AsUint8()
		for y := 0; y < h; y++ {
			row := im.Pix[y*im.Stride : y*im.Stride+w]
			copy(dst[y*w:(y+1)*w], row)
		}
		return raw, nil

	case *image.Gray16:
		raw, err := tensor.NewRaw(shape, tensor.Uint16)
		if err != nil {
			return nil, err
		}
		dst := raw.AsUint16()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				off := y*im.Stride + 2*x
				// Gray16 pixels are stored big-endian.
				dst[y*w+x] = uint16(im.Pix[off])<<8 | uint16(im.Pix[off+1])
			}
		}
		return raw, nil

	default:
		raw, err := tensor.NewRaw(shape, tensor.Uint16)
		if err != nil {
			return nil, err
		}
		dst := raw.AsUint16()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g := color.Gray16Model.Convert(m.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
				dst[y*w+x] = g.Y
			}
		}
		return raw, nil
	}
}

// tensorToImage converts a rank-2 uint8 or uint16 tensor to a frame.
func tensorToImage(raw *tensor.RawTensor) (image.Image, error) {
	if raw.Rank() != 2 {
		return nil, fmt.Errorf("raster encode requires rank 2, got shape %v", raw.Shape())
	}
	h, w := raw.Shape()[0], raw.Shape()[1]

	switch raw.DType() {
	case tensor.Uint8:
		im := image.NewGray(image.Rect(0, 0, w, h))
		src := raw.AsUint8()
		for y := 0; y < h; y++ {
			copy(im.Pix[y*im.Stride:y*im.Stride+w], src[y*w:(y+1)*w])
		}
		return im, nil

	case tensor.Uint16:
		im := image.NewGray16(image.Rect(0, 0, w, h))
		src := raw.AsUint16()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := src[y*w+x]
				off := y*im.Stride + 2*x
				im.Pix[off] = uint8(v >> 8)
				im.Pix[off+1] = uint8(v)
			}
		}
		return im, nil

	default:
		return nil, fmt.Errorf("raster encode supports uint8 and uint16, got %s", raw.DType())
	}
}

// PNGCodec reads and writes single-frame PNG images (8- or 16-bit grayscale).
type PNGCodec struct{}

// Extensions returns the extension tags for PNG.
func (*PNGCodec) Extensions() []string { return []string{"png"} }

// Read decodes a PNG file into a rank-2 tensor.
func (*PNGCodec) Read(path string) (*tensor.RawTensor, error) {
	return readRaster(path, png.Decode)
}

// Write encodes a rank-2 tensor as PNG.
func (*PNGCodec) Write(path string, raw *tensor.RawTensor) error {
	return writeRaster(path, raw, png.Encode)
}

// JPEGCodec reads and writes single-frame JPEG images.
// JPEG is 8-bit and lossy; uint16 tensors are rejected on write.
type JPEGCodec struct {
	Quality int
}

// Extensions returns the extension tags for JPEG.
func (*JPEGCodec) Extensions() []string { return []string{"jpg", "jpeg"} }

// Read decodes a JPEG file into a rank-2 tensor.
func (*JPEGCodec) Read(path string) (*tensor.RawTensor, error) {
	return readRaster(path, func(r io.Reader) (image.Image, error) {
		return jpeg.Decode(r)
	})
}

// Write encodes a rank-2 uint8 tensor as JPEG.
func (c *JPEGCodec) Write(path string, raw *tensor.RawTensor) error {
	if raw.DType() != tensor.Uint8 {
		return fmt.Errorf("jpeg encode supports uint8 only, got %s", raw.DType())
	}
	quality := c.Quality
	if quality == 0 {
		quality = 95
	}
	return writeRaster(path, raw, func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: quality})
	})
}

func readRaster(path string, decode func(io.Reader) (image.Image, error)) (*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return imageToTensor(m)
}

func writeRaster(path string, raw *tensor.RawTensor, encode func(io.Writer, image.Image) error) error {
	m, err := tensorToImage(raw)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, m); err != nil {
		_ = f.Close() // Best effort close on error
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}
