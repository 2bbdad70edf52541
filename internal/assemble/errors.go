package assemble

import (
	"fmt"

	"github.com/fluostack/fluostack/internal/recipe"
	"github.com/fluostack/fluostack/internal/tensor"
)

// InconsistentLayerError reports two layers of one acquisition that cannot
// form a homogeneous tensor: differing spatial shape, differing element
// type, or a rank that contradicts the recipe's z decomposition.
type InconsistentLayerError struct {
	RefFile  string // first file of the acquisition, the reference layer
	File     string // conflicting file
	RefShape tensor.Shape
	Shape    tensor.Shape
	RefDType tensor.DataType
	DType    tensor.DataType
	Coord    recipe.Coordinate
	Reason   string // set when the conflict is rank, not shape/dtype
}

// Error implements the error interface.
func (e *InconsistentLayerError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("inconsistent layer %q (coordinate r=%d c=%d z=%d): %s (shape %v, dtype %s)",
			e.File, e.Coord.R, e.Coord.C, e.Coord.Z, e.Reason, e.Shape, e.DType)
	}
	return fmt.Sprintf("inconsistent layer: %q is %v %s but %q is %v %s (coordinate r=%d c=%d z=%d)",
		e.RefFile, e.RefShape, e.RefDType, e.File, e.Shape, e.DType,
		e.Coord.R, e.Coord.C, e.Coord.Z)
}
