package recipe

// segKind identifies one component of a tokenized pattern.
type segKind int

const (
	segLiteral segKind = iota
	segFov
	segR
	segC
	segZ
	segExt
	segOpt
)

// placeholder tokens in longest-first order, so that "fov" wins over a
// literal "f" followed by "o", "v" and "ext"/"opt" win over single letters.
var placeholderTokens = []struct {
	tok  string
	kind segKind
}{
	{"fov", segFov},
	{"ext", segExt},
	{"opt", segOpt},
	{"r", segR},
	{"c", segC},
	{"z", segZ},
}

// segment is one pattern component: either a placeholder or literal text.
type segment struct {
	kind segKind
	lit  string // only for segLiteral
}

// tokenize splits a pattern into placeholder and literal segments.
// Placeholders are matched as whole, non-overlapping template components by
// longest-prefix scan; everything unmatched is literal separator text.
func tokenize(pattern string) []segment {
	var segs []segment
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			segs = append(segs, segment{kind: segLiteral, lit: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(pattern); {
		matched := false
		for _, p := range placeholderTokens {
			if len(pattern)-i >= len(p.tok) && pattern[i:i+len(p.tok)] == p.tok {
				flush()
				segs = append(segs, segment{kind: p.kind})
				i += len(p.tok)
				matched = true
				break
			}
		}
		if !matched {
			lit = append(lit, pattern[i])
			i++
		}
	}
	flush()
	return segs
}

// countKind returns how many segments of the given kind the pattern holds.
func countKind(segs []segment, kind segKind) int {
	n := 0
	for _, s := range segs {
		if s.kind == kind {
			n++
		}
	}
	return n
}
