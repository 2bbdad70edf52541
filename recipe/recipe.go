// Package recipe exports the filename-convention model.
//
// A recipe describes how one acquisition is spread over files; see the
// internal package documentation for the full rules. Typical use:
//
//	rc, err := recipe.New(recipe.Input{
//	    Pattern: "opt_c_fov.ext",
//	    Ext:     "tif",
//	    Opt:     "experience_1",
//	    Fov:     recipe.One("fov_1"),
//	    C:       recipe.Seq("dapi", "smfish"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := rc.ValidateDirectory(dir); err != nil {
//	    log.Fatal(err)
//	}
package recipe

import (
	"github.com/fluostack/fluostack/internal/recipe"
)

// Input is the user-facing description of a filename convention.
type Input = recipe.Input

// Values is the scalar-or-sequence variant for one recipe axis.
type Values = recipe.Values

// Recipe is an immutable, validated filename convention.
type Recipe = recipe.Recipe

// Coordinate addresses one file of an acquisition.
type Coordinate = recipe.Coordinate

// Error types reported by normalization and directory validation.
type (
	// MalformedRecipeError reports a structural problem in the recipe.
	MalformedRecipeError = recipe.MalformedRecipeError
	// MissingFileError reports a coordinate with no file in the directory.
	MissingFileError = recipe.MissingFileError
	// AmbiguousMatchError reports two coordinates rendering one filename.
	AmbiguousMatchError = recipe.AmbiguousMatchError
)

// One declares a scalar axis with a single fixed value.
func One(v string) Values { return recipe.One(v) }

// Seq declares a sequence axis, one file per value in order.
func Seq(vs ...string) Values { return recipe.Seq(vs...) }

// New normalizes and validates the structural rules of an Input.
func New(in Input) (*Recipe, error) { return recipe.New(in) }
