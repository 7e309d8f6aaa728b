package style

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Keywords is a keyword-to-value mapping. Values may be plain Go values or
// Cyclic containers (Cycle, Palette), which Options expands into per-item
// rows at construction.
type Keywords map[string]any

func (k Keywords) clone() Keywords {
	if k == nil {
		return Keywords{}
	}
	return maps.Clone(k)
}

// sortedKeys returns the keyword names in sorted order.
func (k Keywords) sortedKeys() []string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Spec configures Options construction.
// Use functional options to attach validation and group metadata.
//
// Example:
//
//	// Unvalidated style options
//	o, err := style.New(style.Keywords{"color": "red"})
//
//	// Validated plot options for the "plot" group
//	o, err := style.New(kw, style.Allowed("width", "height"), style.ForGroup("plot"))
type Spec func(*Options)

// Allowed restricts the keywords the Options will accept. Construction
// fails with a KeywordError when a keyword falls outside the list. An empty
// list disables validation.
func Allowed(keywords ...string) Spec {
	return func(o *Options) {
		o.allowed = slices.Clone(keywords)
	}
}

// ForGroup tags the options with the group they configure, such as "plot",
// "style" or "norm". The tag is reported in validation errors.
func ForGroup(name string) Spec {
	return func(o *Options) {
		o.groupName = name
	}
}

// Options is an immutable collection of keyword options. Cyclic values are
// expanded eagerly at construction into concrete keyword rows; Resolve
// indexes into them modularly, so an Options can style any number of
// overlaid items.
type Options struct {
	groupName string
	allowed   []string   // sorted; empty means unrestricted
	kw        Keywords   // raw keywords as supplied
	rows      []Keywords // expanded concrete rows, always at least one
}

// New creates an Options from the given keywords. Keywords are validated in
// sorted order against the allow-list, so the reported keyword is
// deterministic when several are invalid.
func New(kw Keywords, specs ...Spec) (*Options, error) {
	o := &Options{kw: kw.clone()}
	for _, spec := range specs {
		spec(o)
	}
	sort.Strings(o.allowed)
	if len(o.allowed) > 0 {
		for _, k := range o.kw.sortedKeys() {
			if !o.allows(k) {
				return nil, &KeywordError{
					Keyword:   k,
					Allowed:   slices.Clone(o.allowed),
					GroupName: o.groupName,
				}
			}
		}
	}
	rows, err := expand(o.kw)
	if err != nil {
		return nil, err
	}
	o.rows = rows
	return o, nil
}

// Must is like New but panics on error.
// Use for package-level defaults and tests.
func Must(kw Keywords, specs ...Spec) *Options {
	o, err := New(kw, specs...)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Options) allows(keyword string) bool {
	if len(o.allowed) == 0 {
		return true
	}
	_, ok := slices.BinarySearch(o.allowed, keyword)
	return ok
}

// expand flattens cyclic values into concrete keyword rows. Cyclic keywords
// are zipped position-wise so they cycle in parallel, which requires every
// cyclic value to have the same length. Static keywords repeat in each row.
func expand(kw Keywords) ([]Keywords, error) {
	var cyclic []string
	for k, v := range kw {
		if _, ok := v.(Cyclic); ok {
			cyclic = append(cyclic, k)
		}
	}
	if len(cyclic) == 0 {
		return []Keywords{kw.clone()}, nil
	}
	sort.Strings(cyclic)

	lengths := make(map[string]int, len(cyclic))
	n := -1
	mismatch := false
	for _, k := range cyclic {
		l := kw[k].(Cyclic).Len()
		lengths[k] = l
		if n == -1 {
			n = l
		} else if l != n {
			mismatch = true
		}
	}
	if mismatch {
		return nil, &CycleLengthError{Lengths: lengths}
	}

	values := make(map[string][]any, len(cyclic))
	for _, k := range cyclic {
		values[k] = kw[k].(Cyclic).Values()
	}
	rows := make([]Keywords, n)
	for i := range rows {
		row := make(Keywords, len(kw))
		for k, v := range kw {
			if _, ok := v.(Cyclic); !ok {
				row[k] = v
			}
		}
		for _, k := range cyclic {
			row[k] = values[k][i]
		}
		rows[i] = row
	}
	return rows, nil
}

// GroupName returns the group tag, or "" when untagged.
func (o *Options) GroupName() string { return o.groupName }

// AllowedKeywords returns a copy of the sorted allow-list. An empty result
// means validation is disabled.
func (o *Options) AllowedKeywords() []string { return slices.Clone(o.allowed) }

// Keys returns the keyword names in sorted order.
func (o *Options) Keys() []string { return o.kw.sortedKeys() }

// Keywords returns a copy of the raw keywords, cyclic values included.
func (o *Options) Keywords() Keywords { return o.kw.clone() }

// Get returns the raw value for a keyword.
func (o *Options) Get(keyword string) (any, bool) {
	v, ok := o.kw[keyword]
	return v, ok
}

// Cyclic reports whether the options expand to more than one keyword row.
func (o *Options) Cyclic() bool { return len(o.rows) > 1 }

// Resolve returns the concrete keyword set for item i. Indexing wraps
// modularly in both directions, so any integer resolves to a row.
func (o *Options) Resolve(i int) Keywords {
	n := len(o.rows)
	return o.rows[((i%n)+n)%n].clone()
}

// Settings returns the single concrete keyword set of non-cyclic options.
// It fails with ErrCyclicOptions when the options expand to several rows.
func (o *Options) Settings() (Keywords, error) {
	if len(o.rows) != 1 {
		return nil, ErrCyclicOptions
	}
	return o.rows[0].clone(), nil
}

// With derives a new Options inheriting these keywords with kw merged over
// them. The allow-list and group tag carry over unless respecified, and the
// merged result is validated and expanded from scratch.
func (o *Options) With(kw Keywords, specs ...Spec) (*Options, error) {
	merged := o.kw.clone()
	for k, v := range kw {
		merged[k] = v
	}
	all := make([]Spec, 0, len(specs)+2)
	all = append(all, Allowed(o.allowed...), ForGroup(o.groupName))
	all = append(all, specs...)
	return New(merged, all...)
}

// MaxCycles restricts every cyclic value to at most n entries. Cycles
// truncate and palettes resample; static keywords are unaffected.
func (o *Options) MaxCycles(n int) (*Options, error) {
	kw := o.kw.clone()
	for k, v := range kw {
		if c, ok := v.(Cyclic); ok {
			kw[k] = c.Take(n)
		}
	}
	return New(kw, Allowed(o.allowed...), ForGroup(o.groupName))
}

func (o *Options) String() string {
	var b strings.Builder
	b.WriteString("Options(")
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, o.kw[k])
	}
	b.WriteString(")")
	return b.String()
}
