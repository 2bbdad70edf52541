package recipe

// Input is the user-facing description of a filename convention.
//
// Pattern and Ext are required. Opt is an optional fixed literal with no
// dimensional meaning (an experiment tag shared by all files). Fov, R, C
// and Z each accept a scalar or a sequence via One and Seq; leaving one
// unset means that axis has a single implicit value and its placeholder
// must not appear in the pattern.
type Input struct {
	Pattern string
	Ext     string
	Opt     string
	Fov     Values
	R       Values
	C       Values
	Z       Values
}

// Recipe is an immutable, validated filename convention.
// Construct with New; a Recipe is reusable across directories and fovs.
type Recipe struct {
	pattern  string
	segments []segment
	ext      string
	opt      string
	fov      Values
	r        Values
	c        Values
	z        Values
}

// New normalizes and validates the structural rules of an Input.
// It returns a *MalformedRecipeError when the pattern and fields do not
// form a well-defined convention. The filesystem is never touched here.
func New(in Input) (*Recipe, error) {
	if in.Pattern == "" {
		return nil, &MalformedRecipeError{Field: "pattern", Reason: "pattern is required"}
	}
	if in.Ext == "" {
		return nil, &MalformedRecipeError{Field: "ext", Reason: "ext is required"}
	}

	segs := tokenize(in.Pattern)

	// ext appears exactly once and the pattern ends with it.
	switch n := countKind(segs, segExt); {
	case n == 0:
		return nil, &MalformedRecipeError{Field: "pattern", Reason: "pattern must contain ext"}
	case n > 1:
		return nil, &MalformedRecipeError{Field: "pattern", Reason: "pattern must contain ext exactly once"}
	}
	if segs[len(segs)-1].kind != segExt {
		return nil, &MalformedRecipeError{Field: "pattern", Reason: "pattern must end with ext"}
	}

	// Every other placeholder at most once, and only when it has a value.
	for _, p := range []struct {
		kind  segKind
		name  string
		value bool
	}{
		{segFov, "fov", in.Fov.IsSet()},
		{segR, "r", in.R.IsSet()},
		{segC, "c", in.C.IsSet()},
		{segZ, "z", in.Z.IsSet()},
		{segOpt, "opt", in.Opt != ""},
	} {
		n := countKind(segs, p.kind)
		if n > 1 {
			return nil, &MalformedRecipeError{
				Field:  p.name,
				Reason: "placeholder appears more than once in pattern",
			}
		}
		if n == 1 && !p.value {
			return nil, &MalformedRecipeError{
				Field:  p.name,
				Reason: "placeholder appears in pattern but has no declared value",
			}
		}
	}

	// Sequence axes must be non-empty.
	for _, a := range []struct {
		name string
		v    Values
	}{
		{"fov", in.Fov}, {"r", in.R}, {"c", in.C}, {"z", in.Z},
	} {
		if a.v.IsSet() && a.v.Len() == 0 {
			return nil, &MalformedRecipeError{Field: a.name, Reason: "sequence axis is empty"}
		}
	}

	return &Recipe{
		pattern:  in.Pattern,
		segments: segs,
		ext:      in.Ext,
		opt:      in.Opt,
		fov:      in.Fov,
		r:        in.R,
		c:        in.C,
		z:        in.Z,
	}, nil
}

// Pattern returns the template string.
func (rc *Recipe) Pattern() string { return rc.pattern }

// Ext returns the fixed file extension.
func (rc *Recipe) Ext() string { return rc.ext }

// Opt returns the optional fixed literal, empty when absent.
func (rc *Recipe) Opt() string { return rc.opt }

// NumR returns the dimension size of the round axis.
func (rc *Recipe) NumR() int { return rc.r.Len() }

// NumC returns the dimension size of the channel axis.
func (rc *Recipe) NumC() int { return rc.c.Len() }

// NumZ returns the declared z dimension size (1 for scalar or absent z).
func (rc *Recipe) NumZ() int { return rc.z.Len() }

// ZDeclared reports whether z is a declared sequence, meaning the z axis is
// decomposed into one 2D plane file per value. When false, each (r, c) file
// must already carry the full z extent.
func (rc *Recipe) ZDeclared() bool {
	return rc.z.IsSet() && !rc.z.IsScalar()
}
