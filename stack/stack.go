// Package stack is the high-level entry point for assembling image stacks.
//
// It wires the recipe engine, the format registry, and the batch driver
// into a small convenience API:
//
//	// One acquisition, one tensor
//	raw, err := stack.Build(recipe.Input{
//	    Pattern: "opt_c_fov.ext",
//	    Ext:     "tif",
//	    Opt:     "experience_1",
//	    Fov:     recipe.One("fov_1"),
//	    C:       recipe.Seq("dapi", "smfish"),
//	}, "/data/run42")
//
//	// A whole batch, lazily
//	it, err := stack.BuildAll([]stack.Entry{{Input: in, Dir: dir}})
//	for it.HasNext() {
//	    raw, err := it.Next()
//	    ...
//	}
package stack

import (
	"github.com/fluostack/fluostack/internal/assemble"
	"github.com/fluostack/fluostack/internal/batch"
	"github.com/fluostack/fluostack/internal/recipe"
	"github.com/fluostack/fluostack/internal/tensor"
)

// Entry pairs one recipe input with the directory holding its files.
type Entry struct {
	Input recipe.Input
	Dir   string
}

// Iterator lazily yields one assembled tensor per (entry, fov).
type Iterator = batch.Iterator

// ErrDone is returned by Iterator.Next after exhaustion.
var ErrDone = batch.ErrDone

// InconsistentLayerError reports layers that cannot form a homogeneous tensor.
type InconsistentLayerError = assemble.InconsistentLayerError

// Build validates the recipe against dir and assembles the stack for the
// recipe's first field of view.
func Build(in recipe.Input, dir string) (*tensor.RawTensor, error) {
	rc, err := recipe.New(in)
	if err != nil {
		return nil, err
	}
	if err := rc.ValidateDirectory(dir); err != nil {
		return nil, err
	}
	return assemble.New(nil).Assemble(rc, dir, rc.FovValues()[0])
}

// BuildAll normalizes every entry, runs the batch-level pre-flight
// validation, and returns a lazy iterator over the assembled stacks,
// entries outer, fov values inner.
func BuildAll(entries []Entry) (*Iterator, error) {
	dm := make(batch.DataMap, 0, len(entries))
	for _, e := range entries {
		rc, err := recipe.New(e.Input)
		if err != nil {
			return nil, err
		}
		dm = append(dm, batch.Entry{Recipe: rc, Dir: e.Dir})
	}
	if err := batch.Validate(dm); err != nil {
		return nil, err
	}
	return batch.NewIterator(dm, nil), nil
}

// BuildNoRecipe assembles an explicit ordered list of files, one per
// channel, without any filename parsing.
func BuildNoRecipe(paths []string) (*tensor.RawTensor, error) {
	return assemble.New(nil).AssembleNoRecipe(paths)
}
