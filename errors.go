package viz

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the viz package.
var (
	// ErrNoCustomTree is returned by Store.Lookup when no element in the
	// object carries a custom option tree id.
	ErrNoCustomTree = errors.New("viz: object does not own a custom option tree")

	// ErrNilElement is returned when a nil element is registered or
	// looked up.
	ErrNilElement = errors.New("viz: nil element")
)

// UnregisteredTreeError is returned when an element carries a tree id with
// no corresponding custom tree in the store.
type UnregisteredTreeError struct {
	ID TreeID
}

func (e *UnregisteredTreeError) Error() string {
	return fmt.Sprintf("viz: no custom options defined for tree id %d", e.ID)
}

// AmbiguousTreesError is returned by Store.Lookup when an object combines
// elements stamped with different custom tree ids.
type AmbiguousTreesError struct {
	IDs []TreeID // sorted
}

func (e *AmbiguousTreesError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("viz: object contains elements combined across multiple custom trees (ids %s)",
		strings.Join(ids, ", "))
}
