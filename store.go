package viz

import (
	"sort"
	"sync"

	"github.com/gogpu/viz/internal/vlog"
	"github.com/gogpu/viz/style"
)

// plotterEntry records a registered plotting backend.
type plotterEntry struct {
	plotter   Plotter
	composite bool
}

// Store links element types to plotting backends and holds display
// options: a global option tree driving defaults per type, and custom
// trees attached to individual objects by id. Data objects stay
// independent of plotting; the store is the only place the two meet.
type Store struct {
	mu       sync.RWMutex
	plotters map[string]plotterEntry
	options  *style.OptionTree
	custom   map[TreeID]*style.OptionTree
	nextID   TreeID

	// Serialization state. Mutated only while the package codec mutex is
	// held, see serialize.go.
	saving     bool
	loading    bool
	loadOffset TreeID
}

// treeGroups returns the group schema every store tree carries.
func treeGroups() style.GroupOptions {
	return style.GroupOptions{"plot": nil, "style": nil, "norm": nil}
}

// NewStore creates a Store with an empty global tree over the groups
// "plot", "style" and "norm".
func NewStore() *Store {
	return &Store{
		plotters: make(map[string]plotterEntry),
		options:  style.MustOptionTree(treeGroups()),
		custom:   make(map[TreeID]*style.OptionTree),
	}
}

// defaultStore is the process-wide store.
var defaultStore = NewStore()

// Default returns the process-wide store.
func Default() *Store { return defaultStore }

// Reset restores the store to its initial state: no plotters, an empty
// global tree and no custom trees.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plotters = make(map[string]plotterEntry)
	s.options = style.MustOptionTree(treeGroups())
	s.custom = make(map[TreeID]*style.OptionTree)
	s.nextID = 0
}

// RegisterPlotter binds the sample's element type to a plotting backend
// and rebuilds the global tree: the backend's parameters become the "plot"
// allow-list and its style keywords the "style" allow-list. Composite
// types with no style keywords get only the "plot" group.
//
// Rebuilding replaces the global tree, so plotters should be registered
// before the tree is customized.
func (s *Store) RegisterPlotter(sample Element, p Plotter) error {
	if sample == nil {
		return ErrNilElement
	}
	_, composite := sample.(Composite)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plotters[sample.TypeName()] = plotterEntry{plotter: p, composite: composite}
	return s.rebuildOptions()
}

// rebuildOptions rebuilds the global tree from the registered plotters.
// Caller must hold s.mu.
func (s *Store) rebuildOptions() error {
	names := make([]string, 0, len(s.plotters))
	for name := range s.plotters {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]style.Item, 0, len(names))
	for _, name := range names {
		entry := s.plotters[name]
		plotAllowed := make([]string, 0, len(entry.plotter.ParamNames()))
		for _, param := range entry.plotter.ParamNames() {
			if param != "name" {
				plotAllowed = append(plotAllowed, param)
			}
		}
		groups := style.GroupOptions{
			"plot": style.Must(nil, style.Allowed(plotAllowed...)),
		}
		styleOpts := entry.plotter.StyleOpts()
		if !entry.composite || len(styleOpts) > 0 {
			groups["style"] = style.Must(nil, style.Allowed(styleOpts...))
			groups["norm"] = style.Must(
				style.Keywords{"framewise": false, "axiswise": false},
				style.Allowed("axiswise", "framewise"),
			)
		}
		items = append(items, style.Item{Path: name, Groups: groups})
	}

	tree, err := style.NewOptionTree(treeGroups(), items...)
	if err != nil {
		return err
	}
	s.options = tree
	vlog.Get().Info("viz: rebuilt global option tree", "types", len(names))
	return nil
}

// Plotter returns the backend registered for the element type.
func (s *Store) Plotter(typeName string) (Plotter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.plotters[typeName]
	if !ok {
		return nil, false
	}
	return entry.plotter, true
}

// PlotterTypes returns the registered element type names in sorted order.
func (s *Store) PlotterTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.plotters))
	for name := range s.plotters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the global option tree. The tree is live: Set calls on
// it customize the store's defaults directly.
func (s *Store) Options() *style.OptionTree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// NewTree returns an empty option tree over the store's group schema,
// ready to be filled and attached to an object with AttachTree.
func (s *Store) NewTree() *style.OptionTree {
	return style.MustOptionTree(treeGroups())
}

// LookupOptions resolves the effective options of the given group for the
// element. Unstamped elements resolve against the global tree; stamped
// elements resolve against their custom tree.
func (s *Store) LookupOptions(el Element, group string) (*style.Options, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	id := el.ID()
	s.mu.RLock()
	tree := s.options
	customTree, registered := s.custom[id]
	s.mu.RUnlock()
	if id == 0 {
		return tree.Closest(el, group)
	}
	if !registered {
		return nil, &UnregisteredTreeError{ID: id}
	}
	return customTree.Closest(el, group)
}

// Lookup returns the single custom tree governing the object. It fails
// with ErrNoCustomTree when no nested element is stamped and with an
// AmbiguousTreesError when elements are stamped with different ids.
func (s *Store) Lookup(el Element) (*style.OptionTree, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	seen := make(map[TreeID]struct{})
	el.Traverse(func(e Element) {
		if id := e.ID(); id != 0 {
			seen[id] = struct{}{}
		}
	})
	if len(seen) == 0 {
		return nil, ErrNoCustomTree
	}
	if len(seen) > 1 {
		ids := make([]TreeID, 0, len(seen))
		for id := range seen {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		return nil, &AmbiguousTreesError{IDs: ids}
	}
	var id TreeID
	for id = range seen {
	}
	s.mu.RLock()
	tree, ok := s.custom[id]
	s.mu.RUnlock()
	if !ok {
		return nil, &UnregisteredTreeError{ID: id}
	}
	return tree, nil
}

// AddCustomTree registers a custom tree and returns its issued id.
func (s *Store) AddCustomTree(tree *style.OptionTree) TreeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.custom[s.nextID] = tree
	return s.nextID
}

// AttachTree registers the tree and stamps the element with the issued id.
func (s *Store) AttachTree(el Element, tree *style.OptionTree) TreeID {
	id := s.AddCustomTree(tree)
	el.SetID(id)
	return id
}

// CustomTree returns the custom tree registered under the id.
func (s *Store) CustomTree(id TreeID) (*style.OptionTree, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tree, ok := s.custom[id]
	return tree, ok
}

// RemoveCustomTree drops the custom tree registered under the id.
// It reports whether a tree was removed.
func (s *Store) RemoveCustomTree(id TreeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.custom[id]
	delete(s.custom, id)
	return ok
}

// CustomCount returns the number of registered custom trees.
func (s *Store) CustomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.custom)
}

// maxCustomID returns the highest registered custom tree id.
func (s *Store) maxCustomID() TreeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max TreeID
	for id := range s.custom {
		if id > max {
			max = id
		}
	}
	return max
}

// registerLoaded installs a tree decoded from a serialized object under the
// remapped id, bumping the id counter past it.
func (s *Store) registerLoaded(id TreeID, tree *style.OptionTree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom[id] = tree
	if id > s.nextID {
		s.nextID = id
	}
}
