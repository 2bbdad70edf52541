package batch

import (
	"fmt"

	"github.com/fluostack/fluostack/internal/recipe"
)

// Entry pairs one validated recipe with the directory holding its files.
type Entry struct {
	Recipe *recipe.Recipe
	Dir    string
}

// DataMap is an ordered, replay-stable sequence of entries. Iterating it
// twice yields the same sequence of stacks.
type DataMap []Entry

// Validate checks every entry's recipe against its directory before any
// assembly begins, so a bad entry late in a long batch is caught up front.
// Returns the first failure, wrapped with the entry index.
func Validate(dm DataMap) error {
	for i, e := range dm {
		if e.Recipe == nil {
			return fmt.Errorf("datamap entry %d: recipe is nil", i)
		}
		if err := e.Recipe.ValidateDirectory(e.Dir); err != nil {
			return fmt.Errorf("datamap entry %d: %w", i, err)
		}
	}
	return nil
}
