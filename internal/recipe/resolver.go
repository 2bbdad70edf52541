package recipe

import "strings"

// Coordinate addresses one file of an acquisition: indexes into the
// declared r, c and z sequences (0 for scalar or absent axes).
type Coordinate struct {
	R int
	C int
	Z int
}

// Render substitutes the recipe's values into the pattern for one file.
// Substitution is pure string interpolation: literal separators in the
// pattern pass through unchanged, placeholders are replaced with the fixed
// literal (ext, opt), the fov value, or the indexed axis value.
func (rc *Recipe) Render(fovValue string, coord Coordinate) string {
	var b strings.Builder
	for _, seg := range rc.segments {
		switch seg.kind {
		case segLiteral:
			b.WriteString(seg.lit)
		case segFov:
			b.WriteString(fovValue)
		case segR:
			b.WriteString(rc.r.At(coord.R))
		case segC:
			b.WriteString(rc.c.At(coord.C))
		case segZ:
			b.WriteString(rc.z.At(coord.Z))
		case segExt:
			b.WriteString(rc.ext)
		case segOpt:
			b.WriteString(rc.opt)
		}
	}
	return b.String()
}

// Coordinates enumerates the full coordinate space in canonical order:
// round outermost, channel next, z innermost. This order is what fixes the
// layout of the first three axes of the assembled tensor.
func (rc *Recipe) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, rc.NumR()*rc.NumC()*rc.NumZ())
	for r := 0; r < rc.NumR(); r++ {
		for c := 0; c < rc.NumC(); c++ {
			for z := 0; z < rc.NumZ(); z++ {
				coords = append(coords, Coordinate{R: r, C: c, Z: z})
			}
		}
	}
	return coords
}

// FovValues enumerates the fields of view the recipe denotes, one entry per
// tensor to build. A scalar or absent fov yields a single entry.
func (rc *Recipe) FovValues() []string {
	return rc.fov.Slice()
}
