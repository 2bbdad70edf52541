package recipe

// Values is the scalar-or-sequence variant for one recipe axis.
//
// A scalar axis is covered by a single file along that dimension; a
// sequence axis is decomposed into one file per value, concatenated in
// sequence order. The zero Values means the axis is absent: it has one
// implicit value and its placeholder must not appear in the pattern.
type Values struct {
	vals   []string
	scalar bool
	set    bool
}

// One declares a scalar axis with a single fixed value.
func One(v string) Values {
	return Values{vals: []string{v}, scalar: true, set: true}
}

// Seq declares a sequence axis, one file per value in order.
func Seq(vs ...string) Values {
	vals := make([]string, len(vs))
	copy(vals, vs)
	return Values{vals: vals, set: true}
}

// IsSet reports whether the axis was declared at all.
func (v Values) IsSet() bool { return v.set }

// IsScalar reports whether the axis is a single fixed value.
// Unset axes count as scalar: their dimension size is 1.
func (v Values) IsScalar() bool { return !v.set || v.scalar }

// Len returns the dimension size of the axis (1 for scalar or unset).
func (v Values) Len() int {
	if !v.set {
		return 1
	}
	return len(v.vals)
}

// At returns the i-th declared value. Unset axes have a single empty value.
func (v Values) At(i int) string {
	if !v.set {
		return ""
	}
	return v.vals[i]
}

// Slice returns a copy of the declared values.
func (v Values) Slice() []string {
	if !v.set {
		return []string{""}
	}
	out := make([]string, len(v.vals))
	copy(out, v.vals)
	return out
}
