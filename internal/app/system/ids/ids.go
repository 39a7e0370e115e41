// internal/app/system/ids/ids.go

// Package ids allocates the numeric-style string ids used by the
// Movies, Users, and Reviews collections.
//
// Ids are stored as strings but are numeric by convention; a new id is
// one greater than the largest existing id in the collection.
package ids

import (
	"fmt"
	"strconv"
)

// Next returns the next id for a collection whose existing ids are
// given. The result is max(parsed ids)+1 as a string, or "1" when the
// collection is empty.
//
// A stored id that does not parse as an integer means the collection
// is corrupt; Next reports it rather than guessing, and the caller is
// expected to abort the action with no state change.
func Next(existing []string) (string, error) {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(id)
		if err != nil {
			return "", fmt.Errorf("non-numeric id %q in collection: %w", id, err)
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}
