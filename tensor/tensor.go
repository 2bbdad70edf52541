// Package tensor exports the array substrate for assembled image stacks.
//
// This package wraps the internal tensor implementation and exposes the
// shape, element type, and raw tensor types that the rest of the public
// API is expressed in.
//
// Example:
//
//	raw, err := tensor.NewRaw(tensor.Shape{23, 650, 500}, tensor.Uint16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(raw) // RawTensor[uint16][23 650 500]
package tensor

import (
	"github.com/fluostack/fluostack/internal/tensor"
)

// Shape represents the dimensions of a tensor, outermost axis first.
type Shape = tensor.Shape

// DataType represents runtime element type information.
type DataType = tensor.DataType

// Supported element types.
const (
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// RawTensor is a contiguous, row-major N-dimensional array with an
// explicit shape and element type.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromBytes creates a RawTensor that takes ownership of data.
func FromBytes(shape Shape, dtype DataType, data []byte) (*RawTensor, error) {
	return tensor.FromBytes(shape, dtype, data)
}

// StackNew concatenates tensors along a new leading axis. All inputs must
// share exactly the same shape and dtype.
func StackNew(tensors []*RawTensor) (*RawTensor, error) {
	return tensor.StackNew(tensors)
}
