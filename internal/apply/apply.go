// Package apply splices recorded edits into original file contents.
package apply

import (
	"fmt"
	"sort"

	"github.com/phobologic/nglazy/internal/model"
)

// Edits applies a file's edits against its original bytes in one pass
// and returns the new contents. Edits must be ordered by start offset,
// non-overlapping, and expressed in original-text offsets — exactly the
// form the tracker records.
func Edits(source []byte, edits []model.Edit) ([]byte, error) {
	if len(edits) == 0 {
		return append([]byte(nil), source...), nil
	}
	if !sort.SliceIsSorted(edits, func(i, j int) bool {
		return edits[i].Start < edits[j].Start
	}) {
		return nil, fmt.Errorf("edits are not ordered by start offset")
	}

	result := make([]byte, 0, len(source))
	last := 0
	for _, e := range edits {
		if e.Start < last || e.End() > len(source) {
			return nil, fmt.Errorf("edit [%d,%d) out of bounds (offset %d, %d bytes)",
				e.Start, e.End(), last, len(source))
		}
		result = append(result, source[last:e.Start]...)
		result = append(result, e.Text...)
		last = e.End()
	}
	result = append(result, source[last:]...)

	return result, nil
}
