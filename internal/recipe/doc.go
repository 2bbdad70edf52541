// Package recipe models filename conventions for multi-file acquisitions.
//
// A recipe declares how one field of view is spread over files: a pattern
// over the fixed placeholder vocabulary (fov, r, c, z, ext, opt) plus the
// values each placeholder takes. From a validated recipe the engine derives
// the exact set of filenames an acquisition must contain — no globbing, no
// regular expressions, no guessing.
//
// Example:
//
//	in := recipe.Input{
//	    Pattern: "opt_c_fov.ext",
//	    Ext:     "tif",
//	    Opt:     "experience_1",
//	    Fov:     recipe.One("fov_1"),
//	    C:       recipe.Seq("dapi", "smfish"),
//	}
//	rc, err := recipe.New(in)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = rc.ValidateDirectory("/data/run42")
//
// Coordinates enumerate in fixed nesting order, round outermost and z
// innermost; that order fixes the layout of the assembled tensor.
package recipe
