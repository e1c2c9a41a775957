package boolean

import "github.com/mikenye/plinegeom/aabb"

// Options configures [Apply]. The zero value is not valid; use [Default] and the With*
// functions below, mirroring the C ABI's *_o_init functions.
type Options struct {
	pline1Index      *aabb.Index
	posEqualEps      float64
	collapsedAreaEps float64
}

// Option configures an [Options] value.
type Option func(*Options)

// Default returns the option set's documented defaults: pos_equal_eps=1e-5,
// collapsed_area_eps=1e-5.
func Default() Options {
	return Options{
		posEqualEps:      1e-5,
		collapsedAreaEps: 1e-5,
	}
}

// WithPline1Index supplies a precomputed index over pline1's segments, so a caller
// running several operations against the same pline1 can build the index once.
func WithPline1Index(index *aabb.Index) Option {
	return func(o *Options) { o.pline1Index = index }
}

// WithPosEqualEps overrides the position-equality tolerance used to deduplicate
// intersection points and to join stitched slice endpoints.
func WithPosEqualEps(eps float64) Option {
	return func(o *Options) { o.posEqualEps = eps }
}

// WithCollapsedAreaEps overrides the minimum signed-area magnitude a stitched output
// polyline must have to survive into the result; smaller outputs are dropped as
// degenerate slivers.
func WithCollapsedAreaEps(eps float64) Option {
	return func(o *Options) { o.collapsedAreaEps = eps }
}

func apply(opts []Option) Options {
	o := Default()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
