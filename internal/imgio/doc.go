// Package imgio maps file extensions to image codecs.
//
// Each supported format family is one Codec adapter; the Registry
// dispatches reads and writes by extension tag, so adding a format means
// registering an adapter, not extending a conditional.
//
// Supported formats:
//   - tif/tiff: single- or multi-frame grayscale TIFF (8/16-bit)
//   - png, jpg/jpeg: single-frame raster images
//   - npy: NumPy array, arbitrary rank
//   - npz: zip archive of NumPy arrays
//   - csv: delimited text, rank-2 float64
//   - dv: DeltaVision microscopy volume (read-only)
//
// Every codec decodes to a tensor.RawTensor with an explicit shape and
// element type; no scaling or dtype coercion happens on the way in.
package imgio
