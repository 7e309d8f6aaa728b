package style

import (
	"fmt"
	"math"
	"slices"

	"github.com/aclements/go-moremath/vec"
)

// Sampler generates n sample points spanning [lo, hi].
type Sampler func(lo, hi float64, n int) []float64

// DefaultSamples is the number of colormap samples a Palette takes when no
// count is specified.
const DefaultSamples = 32

// Palette is a Cycle whose values are sampled from a named colormap. The
// sampling range, count, spacing and direction can all be overridden, and
// re-sampled variants are derived with Slice and Take.
type Palette struct {
	key     string
	lo, hi  float64
	samples int
	sampler Sampler
	reverse bool
	values  []any
}

// PaletteOption configures Palette construction.
type PaletteOption func(*Palette)

// WithRange sets the sampling range. The default is [0, 1].
func WithRange(lo, hi float64) PaletteOption {
	return func(p *Palette) { p.lo, p.hi = lo, hi }
}

// WithSamples sets the sample count. The default is DefaultSamples.
func WithSamples(n int) PaletteOption {
	return func(p *Palette) { p.samples = n }
}

// WithSampler sets the spacing function. The default is linear spacing
// (vec.Linspace).
func WithSampler(fn Sampler) PaletteOption {
	return func(p *Palette) { p.sampler = fn }
}

// WithReverse reverses the sampled values.
func WithReverse(reverse bool) PaletteOption {
	return func(p *Palette) { p.reverse = reverse }
}

// NewPalette samples the named colormap from the colormap catalog.
func NewPalette(key string, opts ...PaletteOption) (*Palette, error) {
	p := &Palette{
		key:     key,
		lo:      0,
		hi:      1,
		samples: DefaultSamples,
		sampler: vec.Linspace,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.resample(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustPalette is like NewPalette but panics on error.
func MustPalette(key string, opts ...PaletteOption) *Palette {
	p, err := NewPalette(key, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// resample recomputes values from the current parameters.
func (p *Palette) resample() error {
	cmap, ok := LookupColormap(p.key)
	if !ok {
		return &UnknownKeyError{Key: p.key, Catalog: "colormaps"}
	}
	if p.samples < 1 {
		return ErrNoCycleValues
	}
	if p.sampler == nil {
		p.sampler = vec.Linspace
	}
	points := p.sampler(p.lo, p.hi, p.samples)
	if len(points) == 0 {
		return ErrNoCycleValues
	}
	values := make([]any, len(points))
	for i, x := range points {
		values[i] = cmap(x)
	}
	if p.reverse {
		slices.Reverse(values)
	}
	p.values = values
	return nil
}

func (p *Palette) clone() *Palette {
	q := *p
	q.values = slices.Clone(p.values)
	return &q
}

// Slice derives a Palette resampled over [lo, hi] with the given sample
// count. NaN bounds and a count below one inherit the receiver's values, so
// any subset of the three parameters can be overridden.
func (p *Palette) Slice(lo, hi float64, samples int) (*Palette, error) {
	q := p.clone()
	if !math.IsNaN(lo) {
		q.lo = lo
	}
	if !math.IsNaN(hi) {
		q.hi = hi
	}
	if samples >= 1 {
		q.samples = samples
	}
	if err := q.resample(); err != nil {
		return nil, err
	}
	return q, nil
}

// Key returns the colormap catalog key.
func (p *Palette) Key() string { return p.key }

// Range returns the sampling range.
func (p *Palette) Range() (lo, hi float64) { return p.lo, p.hi }

// Samples returns the sample count.
func (p *Palette) Samples() int { return p.samples }

// Reversed reports whether the sampled values are reversed.
func (p *Palette) Reversed() bool { return p.reverse }

// Values returns a copy of the sampled values.
func (p *Palette) Values() []any { return slices.Clone(p.values) }

// Len returns the sample count of the resolved values.
func (p *Palette) Len() int { return len(p.values) }

// Take returns a Palette resampled to n values across the same range. When
// n < 1 the palette is kept as is. If the colormap has been removed from
// the catalog since construction, the existing values are truncated instead.
func (p *Palette) Take(n int) Cyclic {
	if n < 1 {
		return p.clone()
	}
	q := p.clone()
	q.samples = n
	if err := q.resample(); err != nil {
		q = p.clone()
		if n < len(q.values) {
			q.values = q.values[:n]
		}
	}
	return q
}

func (p *Palette) String() string {
	return fmt.Sprintf("Palette(%q, range=[%g, %g], samples=%d)", p.key, p.lo, p.hi, p.samples)
}
