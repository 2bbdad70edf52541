package stack_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluostack/fluostack/imgio"
	"github.com/fluostack/fluostack/recipe"
	"github.com/fluostack/fluostack/stack"
	"github.com/fluostack/fluostack/tensor"
)

// writeStackTIFF writes a deterministic multi-page 16-bit TIFF z-stack.
func writeStackTIFF(t *testing.T, path string, shape tensor.Shape, seed uint16) {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Uint16)
	require.NoError(t, err)
	pix := raw.AsUint16()
	for i := range pix {
		pix[i] = seed + uint16(i)
	}
	require.NoError(t, imgio.Write(path, "tif", raw))
}

func scenarioInput() recipe.Input {
	return recipe.Input{
		Pattern: "opt_c_fov.ext",
		Ext:     "tif",
		Opt:     "experience_1",
		Fov:     recipe.One("fov_1"),
		C:       recipe.Seq("dapi", "smfish"),
	}
}

func TestBuildTwoChannelStack(t *testing.T) {
	dir := t.TempDir()
	shape := tensor.Shape{7, 16, 12} // z-stack per channel, one tif each
	writeStackTIFF(t, filepath.Join(dir, "experience_1_dapi_fov_1.tif"), shape, 1000)
	writeStackTIFF(t, filepath.Join(dir, "experience_1_smfish_fov_1.tif"), shape, 20000)

	raw, err := stack.Build(scenarioInput(), dir)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2, 7, 16, 12}, raw.Shape())
	assert.Equal(t, tensor.Uint16, raw.DType())
}

func TestBuildMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeStackTIFF(t, filepath.Join(dir, "experience_1_dapi_fov_1.tif"), tensor.Shape{3, 8, 6}, 0)

	_, err := stack.Build(scenarioInput(), dir)
	require.Error(t, err)

	var missing *recipe.MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "experience_1_smfish_fov_1.tif", missing.Filename)
}

func TestBuildNoRecipeMatchesBuild(t *testing.T) {
	dir := t.TempDir()
	shape := tensor.Shape{5, 10, 8}
	dapi := filepath.Join(dir, "experience_1_dapi_fov_1.tif")
	smfish := filepath.Join(dir, "experience_1_smfish_fov_1.tif")
	writeStackTIFF(t, dapi, shape, 111)
	writeStackTIFF(t, smfish, shape, 222)

	viaRecipe, err := stack.Build(scenarioInput(), dir)
	require.NoError(t, err)

	viaPaths, err := stack.BuildNoRecipe([]string{dapi, smfish})
	require.NoError(t, err)

	assert.True(t, viaRecipe.Equal(viaPaths))
}

func TestBuildAllRepeatedFov(t *testing.T) {
	dir := t.TempDir()
	shape := tensor.Shape{4, 9, 7}
	writeStackTIFF(t, filepath.Join(dir, "experience_1_dapi_fov_1.tif"), shape, 5)
	writeStackTIFF(t, filepath.Join(dir, "experience_1_smfish_fov_1.tif"), shape, 6)

	in := scenarioInput()
	in.Fov = recipe.Seq("fov_1", "fov_1")

	it, err := stack.BuildAll([]stack.Entry{{Input: in, Dir: dir}})
	require.NoError(t, err)

	var count int
	var prev *tensor.RawTensor
	for it.HasNext() {
		raw, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{1, 2, 4, 9, 7}, raw.Shape())
		if prev != nil {
			assert.True(t, prev.Equal(raw))
		}
		prev = raw
		count++
	}
	assert.Equal(t, 2, count)
}

func TestBuildAllPreflightCatchesBadEntryUpFront(t *testing.T) {
	goodDir := t.TempDir()
	shape := tensor.Shape{2, 6, 4}
	writeStackTIFF(t, filepath.Join(goodDir, "experience_1_dapi_fov_1.tif"), shape, 1)
	writeStackTIFF(t, filepath.Join(goodDir, "experience_1_smfish_fov_1.tif"), shape, 2)

	_, err := stack.BuildAll([]stack.Entry{
		{Input: scenarioInput(), Dir: goodDir},
		{Input: scenarioInput(), Dir: t.TempDir()}, // empty directory
	})
	require.Error(t, err, "a bad entry late in the batch is caught before any assembly")
	assert.Contains(t, err.Error(), "entry 1")
}
