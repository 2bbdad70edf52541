package recipe

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateDirectory verifies the recipe against a target directory: every
// filename in the fov × r × c × z cross product must exist exactly once as
// a regular file. Extra unrelated files are ignored.
//
// Uniqueness holds within one fov's coordinate set: a repeated fov value
// legitimately denotes building the same tensor again, while two distinct
// (r, c, z) coordinates rendering the same filename is a non-injective
// pattern and fails with *AmbiguousMatchError. The first absent file fails
// with *MissingFileError.
func (rc *Recipe) ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	for _, fov := range rc.FovValues() {
		seen := make(map[string]Coordinate)
		for _, coord := range rc.Coordinates() {
			name := rc.Render(fov, coord)

			if prior, dup := seen[name]; dup {
				return &AmbiguousMatchError{
					Filename: name,
					Fov:      fov,
					First:    prior,
					Second:   coord,
				}
			}
			seen[name] = coord

			fi, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !fi.Mode().IsRegular() {
				return &MissingFileError{
					Dir:      dir,
					Filename: name,
					Fov:      fov,
					Coord:    coord,
				}
			}
		}
	}
	return nil
}
