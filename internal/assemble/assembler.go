package assemble

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fluostack/fluostack/internal/imgio"
	"github.com/fluostack/fluostack/internal/recipe"
	"github.com/fluostack/fluostack/internal/tensor"
)

// Assembler loads recipe-resolved files and stacks them into 5D tensors.
// It holds no per-acquisition state and is reusable across recipes.
type Assembler struct {
	reg *imgio.Registry
}

// New creates an Assembler reading through the given registry.
// A nil registry means the default registry with all built-in codecs.
func New(reg *imgio.Registry) *Assembler {
	if reg == nil {
		reg = imgio.Default()
	}
	return &Assembler{reg: reg}
}

// layerRef tracks the first loaded layer of an acquisition; every later
// layer must match it exactly.
type layerRef struct {
	file  string
	shape tensor.Shape
	dtype tensor.DataType
	valid bool
}

func (ref *layerRef) check(file string, raw *tensor.RawTensor, coord recipe.Coordinate) error {
	if !ref.valid {
		ref.file = file
		ref.shape = raw.Shape().Clone()
		ref.dtype = raw.DType()
		ref.valid = true
		return nil
	}
	if raw.DType() != ref.dtype || !raw.Shape().Equal(ref.shape) {
		return &InconsistentLayerError{
			RefFile:  ref.file,
			File:     file,
			RefShape: ref.shape,
			Shape:    raw.Shape(),
			RefDType: ref.dtype,
			DType:    raw.DType(),
			Coord:    coord,
		}
	}
	return nil
}

// Assemble builds the (r, c, z, y, x) tensor for one field of view.
//
// When the recipe declares an explicit z sequence, every file must decode
// to a single 2D plane and planes stack along a new z axis in ascending
// z-index order. With a scalar or absent z, every (r, c) file must already
// be a complete z-stack (rank 3) or a single plane promoted to z-size 1.
// Assembly never partially succeeds: the first inconsistency aborts the
// whole tensor.
func (a *Assembler) Assemble(rc *recipe.Recipe, dir, fovValue string) (*tensor.RawTensor, error) {
	var ref layerRef
	zDecl := rc.ZDeclared()

	rounds := make([]*tensor.RawTensor, 0, rc.NumR())
	for r := 0; r < rc.NumR(); r++ {
		chans := make([]*tensor.RawTensor, 0, rc.NumC())
		for c := 0; c < rc.NumC(); c++ {
			var vol *tensor.RawTensor
			var err error
			if zDecl {
				vol, err = a.loadPlanes(rc, dir, fovValue, r, c, &ref)
			} else {
				vol, err = a.loadVolume(rc, dir, fovValue, r, c, &ref)
			}
			if err != nil {
				return nil, err
			}
			chans = append(chans, vol)
		}

		round, err := tensor.StackNew(chans)
		if err != nil {
			return nil, fmt.Errorf("stacking channels of round %d: %w", r, err)
		}
		rounds = append(rounds, round)
	}

	out, err := tensor.StackNew(rounds)
	if err != nil {
		return nil, fmt.Errorf("stacking rounds: %w", err)
	}
	return out, nil
}

// loadPlanes reads one 2D plane per declared z value and stacks them into
// a (z, y, x) volume.
func (a *Assembler) loadPlanes(rc *recipe.Recipe, dir, fovValue string, r, c int, ref *layerRef) (*tensor.RawTensor, error) {
	planes := make([]*tensor.RawTensor, 0, rc.NumZ())
	for z := 0; z < rc.NumZ(); z++ {
		coord := recipe.Coordinate{R: r, C: c, Z: z}
		path := filepath.Join(dir, rc.Render(fovValue, coord))

		raw, err := a.reg.Read(path, rc.Ext())
		if err != nil {
			return nil, err
		}
		if raw.Rank() != 2 {
			return nil, &InconsistentLayerError{
				File:   path,
				Shape:  raw.Shape(),
				DType:  raw.DType(),
				Coord:  coord,
				Reason: "recipe declares a z sequence, expected one 2D plane per file",
			}
		}
		if err := ref.check(path, raw, coord); err != nil {
			return nil, err
		}
		planes = append(planes, raw)
	}

	vol, err := tensor.StackNew(planes)
	if err != nil {
		return nil, fmt.Errorf("stacking z planes of (r=%d, c=%d): %w", r, c, err)
	}
	return vol, nil
}

// loadVolume reads the single file covering the whole z extent of (r, c),
// promoting a bare 2D plane to z-size 1.
func (a *Assembler) loadVolume(rc *recipe.Recipe, dir, fovValue string, r, c int, ref *layerRef) (*tensor.RawTensor, error) {
	coord := recipe.Coordinate{R: r, C: c}
	path := filepath.Join(dir, rc.Render(fovValue, coord))

	raw, err := a.reg.Read(path, rc.Ext())
	if err != nil {
		return nil, err
	}

	switch raw.Rank() {
	case 2:
		raw, err = raw.WithShape(append(tensor.Shape{1}, raw.Shape()...))
		if err != nil {
			return nil, err
		}
	case 3:
		// Already a full z-stack.
	default:
		return nil, &InconsistentLayerError{
			File:   path,
			Shape:  raw.Shape(),
			DType:  raw.DType(),
			Coord:  coord,
			Reason: "expected a 2D plane or a 3D z-stack",
		}
	}

	if err := ref.check(path, raw, coord); err != nil {
		return nil, err
	}
	return raw, nil
}

// AssembleNoRecipe builds a 5D tensor from an explicit ordered list of
// paths, one per channel, with no filename parsing at all. Each file is
// promoted to a (z, y, x) volume, all volumes must be homogeneous, and the
// result is (1, len(paths), z, y, x).
func (a *Assembler) AssembleNoRecipe(paths []string) (*tensor.RawTensor, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("assemble: at least one path required")
	}

	var ref layerRef
	chans := make([]*tensor.RawTensor, 0, len(paths))
	for i, path := range paths {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		raw, err := a.reg.Read(path, ext)
		if err != nil {
			return nil, err
		}

		coord := recipe.Coordinate{C: i}
		switch raw.Rank() {
		case 2:
			raw, err = raw.WithShape(append(tensor.Shape{1}, raw.Shape()...))
			if err != nil {
				return nil, err
			}
		case 3:
			// Already a full z-stack.
		default:
			return nil, &InconsistentLayerError{
				File:   path,
				Shape:  raw.Shape(),
				DType:  raw.DType(),
				Coord:  coord,
				Reason: "expected a 2D plane or a 3D z-stack",
			}
		}

		if err := ref.check(path, raw, coord); err != nil {
			return nil, err
		}
		chans = append(chans, raw)
	}

	stacked, err := tensor.StackNew(chans)
	if err != nil {
		return nil, fmt.Errorf("stacking channels: %w", err)
	}
	return stacked.WithShape(append(tensor.Shape{1}, stacked.Shape()...))
}
