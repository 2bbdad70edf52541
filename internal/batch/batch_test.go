package batch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluostack/fluostack/internal/imgio"
	"github.com/fluostack/fluostack/internal/recipe"
	"github.com/fluostack/fluostack/internal/tensor"
)

func writeNPY(t *testing.T, dir, name string, shape tensor.Shape, seed uint16) {
	t.Helper()
	data := make([]uint16, shape.NumElements())
	for i := range data {
		data[i] = seed + uint16(i)
	}
	raw, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	require.NoError(t, imgio.Default().Write(filepath.Join(dir, name), "npy", raw))
}

func fovRecipe(t *testing.T, fov recipe.Values) *recipe.Recipe {
	t.Helper()
	rc, err := recipe.New(recipe.Input{
		Pattern: "c_fov.ext",
		Ext:     "npy",
		Fov:     fov,
		C:       recipe.Seq("dapi", "smfish"),
	})
	require.NoError(t, err)
	return rc
}

func fovDir(t *testing.T, fovs ...string) string {
	t.Helper()
	dir := t.TempDir()
	for i, fov := range fovs {
		writeNPY(t, dir, "dapi_"+fov+".npy", tensor.Shape{3, 4, 5}, uint16(i*1000))
		writeNPY(t, dir, "smfish_"+fov+".npy", tensor.Shape{3, 4, 5}, uint16(i*1000+500))
	}
	return dir
}

func TestValidatePassesGoodEntries(t *testing.T) {
	dm := DataMap{
		{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: fovDir(t, "fov_1")},
		{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: fovDir(t, "fov_1")},
	}
	require.NoError(t, Validate(dm))
}

func TestValidateReportsEntryIndex(t *testing.T) {
	dm := DataMap{
		{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: fovDir(t, "fov_1")},
		{Recipe: fovRecipe(t, recipe.One("fov_9")), Dir: fovDir(t, "fov_1")}, // wrong fov
	}

	err := Validate(dm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")

	var missing *recipe.MissingFileError
	assert.ErrorAs(t, err, &missing)
}

func TestValidateRejectsNilRecipe(t *testing.T) {
	require.Error(t, Validate(DataMap{{Recipe: nil, Dir: t.TempDir()}}))
}

func TestIteratorRepeatedFovYieldsTwoTensors(t *testing.T) {
	// One entry, fov declared twice: exactly two identical stacks.
	dir := fovDir(t, "fov_1")
	dm := DataMap{{Recipe: fovRecipe(t, recipe.Seq("fov_1", "fov_1")), Dir: dir}}
	require.NoError(t, Validate(dm))

	it := NewIterator(dm, nil)

	require.True(t, it.HasNext())
	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2, 3, 4, 5}, first.Shape())

	require.True(t, it.HasNext())
	second, err := it.Next()
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrDone)
}

func TestIteratorEntriesOuterFovsInner(t *testing.T) {
	dirA := fovDir(t, "fov_1", "fov_2")
	dirB := fovDir(t, "fov_1")
	dm := DataMap{
		{Recipe: fovRecipe(t, recipe.Seq("fov_1", "fov_2")), Dir: dirA},
		{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: dirB},
	}
	require.NoError(t, Validate(dm))

	it := NewIterator(dm, nil)
	var stacks []*tensor.RawTensor
	for it.HasNext() {
		raw, err := it.Next()
		require.NoError(t, err)
		stacks = append(stacks, raw)
	}
	require.Len(t, stacks, 3)

	// Entry A's two fovs first, then entry B; fov_1 and fov_2 of dirA hold
	// different content, so adjacent stacks must differ.
	assert.False(t, stacks[0].Equal(stacks[1]))
}

func TestIteratorReplayStable(t *testing.T) {
	dir := fovDir(t, "fov_1")
	dm := DataMap{{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: dir}}

	run := func() *tensor.RawTensor {
		it := NewIterator(dm, nil)
		raw, err := it.Next()
		require.NoError(t, err)
		return raw
	}
	assert.True(t, run().Equal(run()), "re-iterating a DataMap must replay the same stacks")
}

func TestIteratorSurfacesEntryFailureAndMovesOn(t *testing.T) {
	goodDir := fovDir(t, "fov_1")
	badDir := t.TempDir() // no files at all

	dm := DataMap{
		{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: badDir},
		{Recipe: fovRecipe(t, recipe.One("fov_1")), Dir: goodDir},
	}

	it := NewIterator(dm, nil)

	_, err := it.Next()
	require.Error(t, err, "failing entry surfaces at its yield point")

	raw, err := it.Next()
	require.NoError(t, err, "a failure does not poison later entries")
	assert.Equal(t, tensor.Shape{1, 2, 3, 4, 5}, raw.Shape())
}

func TestIteratorEmptyDataMap(t *testing.T) {
	it := NewIterator(nil, nil)
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrDone)
}
