package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	segs := tokenize("opt_c_fov.ext")

	kinds := make([]segKind, len(segs))
	for i, s := range segs {
		kinds[i] = s.kind
	}
	assert.Equal(t, []segKind{segOpt, segLiteral, segC, segLiteral, segFov, segLiteral, segExt}, kinds)
	assert.Equal(t, "_", segs[1].lit)
	assert.Equal(t, ".", segs[5].lit)
}

func TestTokenizeLongestMatch(t *testing.T) {
	// "fov" must win over single-letter tokens even though it contains none,
	// and "ext"/"opt" must not be split into literals.
	segs := tokenize("fov-r-c-z.ext")
	kinds := make([]segKind, len(segs))
	for i, s := range segs {
		kinds[i] = s.kind
	}
	assert.Equal(t, []segKind{
		segFov, segLiteral, segR, segLiteral, segC, segLiteral, segZ, segLiteral, segExt,
	}, kinds)
}

func TestNewRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{
			name: "missing pattern",
			in:   Input{Ext: "tif"},
		},
		{
			name: "missing ext field",
			in:   Input{Pattern: "c.ext", C: Seq("dapi")},
		},
		{
			name: "pattern without ext",
			in:   Input{Pattern: "c_fov", Ext: "tif", C: Seq("dapi"), Fov: One("fov_1")},
		},
		{
			name: "ext not last",
			in:   Input{Pattern: "ext_c", Ext: "tif", C: Seq("dapi")},
		},
		{
			name: "duplicate placeholder",
			in:   Input{Pattern: "c_c.ext", Ext: "tif", C: Seq("dapi")},
		},
		{
			name: "placeholder without value",
			in:   Input{Pattern: "r_c.ext", Ext: "tif", C: Seq("dapi")},
		},
		{
			name: "opt in pattern but absent",
			in:   Input{Pattern: "opt_c.ext", Ext: "tif", C: Seq("dapi")},
		},
		{
			name: "empty sequence axis",
			in:   Input{Pattern: "c.ext", Ext: "tif", C: Seq()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.in)
			require.Error(t, err)
			var malformed *MalformedRecipeError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestNewAcceptsMinimal(t *testing.T) {
	rc, err := New(Input{Pattern: "c.ext", Ext: "tif", C: Seq("dapi", "smfish")})
	require.NoError(t, err)
	assert.Equal(t, 1, rc.NumR())
	assert.Equal(t, 2, rc.NumC())
	assert.Equal(t, 1, rc.NumZ())
	assert.False(t, rc.ZDeclared())
}

func TestRender(t *testing.T) {
	rc, err := New(Input{
		Pattern: "opt_c_fov.ext",
		Ext:     "tif",
		Opt:     "experience_1",
		Fov:     One("fov_1"),
		C:       Seq("dapi", "smfish"),
	})
	require.NoError(t, err)

	assert.Equal(t, "experience_1_dapi_fov_1.tif", rc.Render("fov_1", Coordinate{C: 0}))
	assert.Equal(t, "experience_1_smfish_fov_1.tif", rc.Render("fov_1", Coordinate{C: 1}))
}

func TestRenderScalarAxes(t *testing.T) {
	rc, err := New(Input{
		Pattern: "r_c_z.ext",
		Ext:     "png",
		R:       One("r1"),
		C:       One("gfp"),
		Z:       Seq("z0", "z1"),
	})
	require.NoError(t, err)
	assert.True(t, rc.ZDeclared())
	assert.Equal(t, "r1_gfp_z1.png", rc.Render("", Coordinate{Z: 1}))
}

func TestCoordinatesOrder(t *testing.T) {
	rc, err := New(Input{
		Pattern: "r_c_z.ext",
		Ext:     "png",
		R:       Seq("r0", "r1"),
		C:       Seq("c0", "c1"),
		Z:       Seq("z0", "z1"),
	})
	require.NoError(t, err)

	want := []Coordinate{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	assert.Equal(t, want, rc.Coordinates())

	// Enumeration is deterministic and stable across calls.
	assert.Equal(t, rc.Coordinates(), rc.Coordinates())
}

func TestFovValues(t *testing.T) {
	scalar, err := New(Input{Pattern: "fov.ext", Ext: "tif", Fov: One("fov_1")})
	require.NoError(t, err)
	assert.Equal(t, []string{"fov_1"}, scalar.FovValues())

	seq, err := New(Input{Pattern: "fov.ext", Ext: "tif", Fov: Seq("fov_1", "fov_2")})
	require.NoError(t, err)
	assert.Equal(t, []string{"fov_1", "fov_2"}, seq.FovValues())

	unset, err := New(Input{Pattern: "c.ext", Ext: "tif", C: One("dapi")})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, unset.FovValues())
}

func TestValuesVariant(t *testing.T) {
	var unset Values
	assert.False(t, unset.IsSet())
	assert.True(t, unset.IsScalar())
	assert.Equal(t, 1, unset.Len())

	one := One("a")
	assert.True(t, one.IsSet())
	assert.True(t, one.IsScalar())
	assert.Equal(t, 1, one.Len())

	seq := Seq("a", "b", "c")
	assert.True(t, seq.IsSet())
	assert.False(t, seq.IsScalar())
	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, "b", seq.At(1))
}
