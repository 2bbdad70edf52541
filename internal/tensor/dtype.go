// Package tensor provides the array substrate for assembled image stacks.
package tensor

// DType is a constraint for supported element types.
type DType interface {
	~uint8 | ~uint16 | ~int32 | ~int64 | ~float32 | ~float64 | ~bool
}

// DataType represents runtime element type information.
type DataType int

// Supported element types. Uint16 is the usual pixel type for
// fluorescence microscopy detectors.
const (
	Uint8 DataType = iota
	Uint16
	Int32
	Int64
	Float32
	Float64
	Bool
)

// Size returns the byte size of the element type.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Bool:
		return 1
	case Uint16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the element type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
