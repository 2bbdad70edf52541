package tensor

import "fmt"

// StackNew concatenates tensors along a new leading axis.
//
// All tensors must share exactly the same shape and dtype; no broadcasting
// or casting is performed. The result of stacking n tensors of shape S is a
// tensor of shape [n, S...].
//
// Example:
//
//	planes := []*RawTensor{p0, p1, p2} // each (650, 500) uint16
//	vol, err := tensor.StackNew(planes) // (3, 650, 500) uint16
func StackNew(tensors []*RawTensor) (*RawTensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("stack: at least one tensor required")
	}

	first := tensors[0]
	for i, t := range tensors[1:] {
		if t.DType() != first.DType() {
			return nil, fmt.Errorf("stack: dtype mismatch at index %d: %s vs %s",
				i+1, t.DType(), first.DType())
		}
		if !t.Shape().Equal(first.Shape()) {
			return nil, fmt.Errorf("stack: shape mismatch at index %d: %v vs %v",
				i+1, t.Shape(), first.Shape())
		}
	}

	shape := append(Shape{len(tensors)}, first.Shape()...)
	out, err := NewRaw(shape, first.DType())
	if err != nil {
		return nil, err
	}

	step := first.ByteSize()
	for i, t := range tensors {
		copy(out.data[i*step:(i+1)*step], t.Data())
	}
	return out, nil
}

// FromSlice creates a RawTensor from a typed Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	switch src := any(data).(type) {
	case []uint8:
		copy(raw.AsUint8(), src)
	case []uint16:
		copy(raw.AsUint16(), src)
	case []int32:
		copy(raw.AsInt32(), src)
	case []int64:
		copy(raw.AsInt64(), src)
	case []float32:
		copy(raw.AsFloat32(), src)
	case []float64:
		copy(raw.AsFloat64(), src)
	case []bool:
		copy(raw.AsBool(), src)
	default:
		panic("unsupported type")
	}
	return raw, nil
}
