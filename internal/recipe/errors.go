package recipe

import "fmt"

// MalformedRecipeError reports a structural problem in the recipe itself,
// detected without touching the filesystem.
type MalformedRecipeError struct {
	Field  string // offending field or placeholder, when identifiable
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecipeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed recipe: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed recipe: %s", e.Reason)
}

// MissingFileError reports a coordinate whose rendered filename is absent
// from the target directory.
type MissingFileError struct {
	Dir      string
	Filename string
	Fov      string
	Coord    Coordinate
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing file: %q not found in %s (fov %q, coordinate r=%d c=%d z=%d)",
		e.Filename, e.Dir, e.Fov, e.Coord.R, e.Coord.C, e.Coord.Z)
}

// AmbiguousMatchError reports two distinct coordinates rendering the same
// filename: the pattern/field combination is not injective.
type AmbiguousMatchError struct {
	Filename string
	Fov      string
	First    Coordinate
	Second   Coordinate
}

// Error implements the error interface.
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match: coordinates (r=%d c=%d z=%d) and (r=%d c=%d z=%d) of fov %q both render %q",
		e.First.R, e.First.C, e.First.Z,
		e.Second.R, e.Second.C, e.Second.Z, e.Fov, e.Filename)
}
