package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the style package.
var (
	// ErrNoCycleValues is returned when a Cycle or Palette resolves to an
	// empty value sequence.
	ErrNoCycleValues = errors.New("style: cycle resolved to no values")

	// ErrCyclicOptions is returned by Options.Settings when the options
	// expand to more than one concrete keyword set.
	ErrCyclicOptions = errors.New("style: options are cyclic, resolve with an index")

	// ErrNoGroups is returned when an option tree is built without a
	// group schema.
	ErrNoGroups = errors.New("style: option tree requires at least one group")

	// ErrEmptyPath is returned when an option tree assignment names no
	// path segments.
	ErrEmptyPath = errors.New("style: empty option tree path")
)

// KeywordError is returned when a keyword is rejected by an Options
// allow-list. Path and GroupName are filled in when the rejection happens
// during an option tree assignment.
type KeywordError struct {
	Keyword   string   // the rejected keyword
	Allowed   []string // sorted allow-list it was checked against
	GroupName string   // group being assigned, if any
	Path      string   // tree path being assigned, if any
}

func (e *KeywordError) Error() string {
	if e.GroupName != "" || e.Path != "" {
		return fmt.Sprintf("style: invalid keyword %q for group %q at path %q, allowed keywords are %s",
			e.Keyword, e.GroupName, e.Path, keywordList(e.Allowed))
	}
	return fmt.Sprintf("style: invalid keyword %q, allowed keywords are %s",
		e.Keyword, keywordList(e.Allowed))
}

func keywordList(allowed []string) string {
	if len(allowed) == 0 {
		return "(none)"
	}
	return strings.Join(allowed, ", ")
}

// SchemaError is returned when an assignment names a group that is not part
// of the tree's schema.
type SchemaError struct {
	Group string
	Path  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("style: group %q is not defined at path %q", e.Group, e.Path)
}

// UnknownKeyError is returned when a named catalog lookup fails.
type UnknownKeyError struct {
	Key     string
	Catalog string // "cycles" or "colormaps"
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("style: no %s entry named %q", e.Catalog, e.Key)
}

// CycleLengthError is returned when the cyclic values within one Options
// set have differing lengths and cannot be zipped into keyword rows.
type CycleLengthError struct {
	Lengths map[string]int // cyclic keyword -> value count
}

func (e *CycleLengthError) Error() string {
	parts := make([]string, 0, len(e.Lengths))
	for k := range e.Lengths {
		parts = append(parts, k)
	}
	sort.Strings(parts)
	for i, k := range parts {
		parts[i] = fmt.Sprintf("%s=%d", k, e.Lengths[k])
	}
	return "style: cyclic keywords have mismatched lengths: " + strings.Join(parts, ", ")
}
