package batch

import (
	"errors"

	"github.com/fluostack/fluostack/internal/assemble"
	"github.com/fluostack/fluostack/internal/tensor"
)

// ErrDone is returned by Next after the iterator is exhausted.
var ErrDone = errors.New("batch: no more stacks")

// Iterator lazily yields one assembled tensor per (entry, fov), DataMap
// entries outer, fov values within an entry inner.
//
// A failing entry surfaces its error at the point that stack would be
// yielded and the iterator then moves on; treating one failure as fatal or
// as a reason to skip is the caller's policy.
type Iterator struct {
	asm  *assemble.Assembler
	dm   DataMap
	next int      // index of the current entry
	fovs []string // fov values of the current entry
	fov  int      // index into fovs
}

// NewIterator creates an iterator over dm, assembling through asm.
// A nil assembler means assemble.New(nil), the default registry.
func NewIterator(dm DataMap, asm *assemble.Assembler) *Iterator {
	if asm == nil {
		asm = assemble.New(nil)
	}
	it := &Iterator{asm: asm, dm: dm}
	it.advanceEntry()
	return it
}

// advanceEntry positions the iterator at the next entry with fov values.
func (it *Iterator) advanceEntry() {
	it.fovs = nil
	it.fov = 0
	for it.next < len(it.dm) {
		e := it.dm[it.next]
		if e.Recipe != nil {
			fovs := e.Recipe.FovValues()
			if len(fovs) > 0 {
				it.fovs = fovs
				return
			}
		}
		it.next++
	}
}

// HasNext reports whether another stack (or a pending failure) remains.
func (it *Iterator) HasNext() bool {
	return it.next < len(it.dm) && it.fov < len(it.fovs)
}

// Next assembles and returns the next stack. After exhaustion it returns
// ErrDone. Each call performs exactly one assembly; nothing is prefetched
// or cached.
func (it *Iterator) Next() (*tensor.RawTensor, error) {
	if !it.HasNext() {
		return nil, ErrDone
	}

	entry := it.dm[it.next]
	fov := it.fovs[it.fov]

	// Advance before assembling so a failure does not wedge the iterator.
	it.fov++
	if it.fov >= len(it.fovs) {
		it.next++
		it.advanceEntry()
	}

	return it.asm.Assemble(entry.Recipe, entry.Dir, fov)
}
