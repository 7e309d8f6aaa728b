package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/viz/internal/ident"
)

// GroupOptions maps a group name to the Options assigned for that group.
type GroupOptions map[string]*Options

// Item seeds an OptionTree with group options at a dotted path during
// construction.
type Item struct {
	Path   string
	Groups GroupOptions
}

// OptionTree is a node in a tree of named Options collections. Every node
// holds exactly one Options per group of the schema fixed at root
// construction, and leaf settings inherit keyword values from their
// ancestors up to the root.
//
// During root construction the tree is uninstantiated: assignments install
// their own allow-lists. Once constructed, assignments to existing children
// keep the child's allow-list, so later updates cannot widen validation.
type OptionTree struct {
	identifier string
	parent     *OptionTree
	groups     map[string]*Options
	childIndex map[string]int
	children   []*OptionTree

	instantiated bool
}

// NewOptionTree creates a tree root with the given group schema, then
// applies the items in order before the tree is marked instantiated. Group
// schema entries may be nil, which installs empty unvalidated Options.
func NewOptionTree(groups GroupOptions, items ...Item) (*OptionTree, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	t := &OptionTree{
		groups:     make(map[string]*Options, len(groups)),
		childIndex: make(map[string]int),
	}
	for name, o := range groups {
		if o == nil {
			o = Must(nil)
		}
		t.groups[name] = o
	}
	for _, item := range items {
		if err := t.Set(item.Path, item.Groups); err != nil {
			return nil, err
		}
	}
	t.markInstantiated()
	return t, nil
}

// MustOptionTree is like NewOptionTree but panics on error.
func MustOptionTree(groups GroupOptions, items ...Item) *OptionTree {
	t, err := NewOptionTree(groups, items...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *OptionTree) markInstantiated() {
	t.instantiated = true
	for _, c := range t.children {
		c.markInstantiated()
	}
}

// Identifier returns the node's sanitized identifier, "" for the root.
func (t *OptionTree) Identifier() string { return t.identifier }

// Parent returns the parent node, nil for the root.
func (t *OptionTree) Parent() *OptionTree { return t.parent }

// Groups returns the schema group names in sorted order.
func (t *OptionTree) Groups() []string {
	names := make([]string, 0, len(t.groups))
	for name := range t.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the Options assigned at this node for the group.
func (t *OptionTree) Group(name string) (*Options, bool) {
	o, ok := t.groups[name]
	return o, ok
}

// Children returns the child nodes in insertion order.
func (t *OptionTree) Children() []*OptionTree {
	return append([]*OptionTree(nil), t.children...)
}

// Child returns the direct child with the given identifier.
func (t *OptionTree) Child(identifier string) (*OptionTree, bool) {
	idx, ok := t.childIndex[identifier]
	if !ok {
		return nil, false
	}
	return t.children[idx], true
}

// Path returns the dotted path from the root to this node, "" for the root.
func (t *OptionTree) Path() string {
	if t.parent == nil {
		return t.identifier
	}
	prefix := t.parent.Path()
	if prefix == "" {
		return t.identifier
	}
	return prefix + "." + t.identifier
}

// splitPath splits a dotted path into sanitized segments.
func splitPath(path string) []string {
	raw := strings.Split(path, ".")
	segs := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		segs = append(segs, ident.Sanitize(s))
	}
	return segs
}

// Set assigns group options at the dotted path below this node, creating
// intermediate nodes as needed. Path segments are sanitized. Assigning to an
// existing node merges with its current values; its children are kept.
func (t *OptionTree) Set(path string, groups GroupOptions) error {
	segs := splitPath(path)
	if len(segs) == 0 {
		return ErrEmptyPath
	}
	node := t
	for _, seg := range segs[:len(segs)-1] {
		node = node.ensureChild(seg)
	}
	return node.setChild(segs[len(segs)-1], groups)
}

// ensureChild returns the direct child for the identifier, creating one
// that shares this node's group options when missing.
func (t *OptionTree) ensureChild(identifier string) *OptionTree {
	if child, ok := t.Child(identifier); ok {
		return child
	}
	groups := make(map[string]*Options, len(t.groups))
	for name, o := range t.groups {
		groups[name] = o
	}
	child := &OptionTree{
		identifier:   identifier,
		parent:       t,
		groups:       groups,
		childIndex:   make(map[string]int),
		instantiated: t.instantiated,
	}
	t.childIndex[identifier] = len(t.children)
	t.children = append(t.children, child)
	return child
}

// setChild assigns group options to the direct child with the identifier.
func (t *OptionTree) setChild(identifier string, groups GroupOptions) error {
	for name := range groups {
		if _, ok := t.groups[name]; !ok {
			return &SchemaError{Group: name, Path: t.Path()}
		}
	}

	existing, exists := t.Child(identifier)
	current := t
	if exists {
		current = existing
	}
	newGroups := make(map[string]*Options, len(t.groups))
	for name := range t.groups {
		override := groups[name]
		if override == nil {
			newGroups[name] = current.groups[name]
			continue
		}
		merged, err := t.inheritedOptions(current, existing, identifier, name, override)
		if err != nil {
			return err
		}
		newGroups[name] = merged
	}

	if exists {
		existing.groups = newGroups
		return nil
	}
	child := &OptionTree{
		identifier:   identifier,
		parent:       t,
		groups:       newGroups,
		childIndex:   make(map[string]int),
		instantiated: t.instantiated,
	}
	t.childIndex[identifier] = len(t.children)
	t.children = append(t.children, child)
	return nil
}

// inheritedOptions merges the override keywords into the group options
// currently in effect at the target path. The allow-list comes from the
// override, except that an already instantiated tree keeps an existing
// child's allow-list so updates cannot widen validation.
func (t *OptionTree) inheritedOptions(current, existing *OptionTree, identifier, group string, override *Options) (*Options, error) {
	allowed := override.AllowedKeywords()
	if t.instantiated && existing != nil {
		allowed = existing.groups[group].AllowedKeywords()
	}
	merged, err := current.groups[group].With(override.Keywords(), Allowed(allowed...), ForGroup(group))
	if err == nil {
		return merged, nil
	}
	var kerr *KeywordError
	if errors.As(err, &kerr) {
		path := identifier
		if prefix := t.Path(); prefix != "" {
			path = prefix + "." + identifier
		}
		return nil, &KeywordError{
			Keyword:   kerr.Keyword,
			Allowed:   kerr.Allowed,
			GroupName: group,
			Path:      path,
		}
	}
	return nil, err
}

// SetTree grafts a subtree at the dotted path: the subtree root's groups
// are assigned at the path, then every descendant is assigned below it in
// insertion order.
func (t *OptionTree) SetTree(path string, sub *OptionTree) error {
	if sub == nil {
		return ErrEmptyPath
	}
	if err := t.Set(path, sub.groupOptions()); err != nil {
		return err
	}
	node, ok := t.at(splitPath(path))
	if !ok {
		return fmt.Errorf("style: path %q vanished during graft", path)
	}
	for _, child := range sub.children {
		if err := node.SetTree(child.identifier, child); err != nil {
			return err
		}
	}
	return nil
}

func (t *OptionTree) groupOptions() GroupOptions {
	groups := make(GroupOptions, len(t.groups))
	for name, o := range t.groups {
		groups[name] = o
	}
	return groups
}

// at walks exact sanitized segments to a descendant.
func (t *OptionTree) at(segs []string) (*OptionTree, bool) {
	node := t
	for _, seg := range segs {
		child, ok := node.Child(seg)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Options resolves the effective options for the group at this node,
// merging keywords from the root down so descendants take priority. The
// result is a bare Options: untagged, unvalidated and ready for Resolve.
// It is nil when the schema has no such group.
func (t *OptionTree) Options(group string) (*Options, error) {
	opts, ok := t.groups[group]
	if !ok {
		return nil, nil
	}
	if t.parent == nil {
		return opts, nil
	}
	inherited, err := t.parent.Options(group)
	if err != nil {
		return nil, err
	}
	merged := inherited.Keywords()
	for k, v := range opts.Keywords() {
		merged[k] = v
	}
	return New(merged)
}

// Find descends from this node matching each path component to the child
// whose identifier is the longest suffix of the component, either raw or
// sanitized. Components that match no child are skipped, so Find always
// returns a node; with no matches at all it returns the receiver.
func (t *OptionTree) Find(path ...string) *OptionTree {
	node := t
	for _, component := range path {
		sanitized := ident.Sanitize(component)
		var best *OptionTree
		bestLen := -1
		for _, child := range node.children {
			id := child.identifier
			if !strings.HasSuffix(component, id) && !strings.HasSuffix(sanitized, id) {
				continue
			}
			if len(id) > bestLen {
				best = child
				bestLen = len(id)
			}
		}
		if best != nil {
			node = best
		}
	}
	return node
}

// ElementInfo describes the identity fields used to locate options for a
// visualization object.
type ElementInfo interface {
	TypeName() string
	Group() string
	Label() string
}

// Closest returns the effective options of the given group for the node
// best matching the object's type name, group and label. It is designed to
// be called on the root of the tree.
func (t *OptionTree) Closest(obj ElementInfo, group string) (*Options, error) {
	return t.Find(obj.TypeName(), obj.Group(), obj.Label()).Options(group)
}

func (t *OptionTree) String() string {
	if t.parent == nil {
		return fmt.Sprintf("OptionTree(groups=%v, children=%d)", t.Groups(), len(t.children))
	}
	return fmt.Sprintf("OptionTree(%q, groups=%v, children=%d)", t.Path(), t.Groups(), len(t.children))
}
