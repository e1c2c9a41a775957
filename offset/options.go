package offset

import "github.com/mikenye/plinegeom/aabb"

// Options configures [Parallel]. The zero value is not valid; use [Default] and the
// With* functions below, mirroring the C ABI's *_o_init functions.
type Options struct {
	index                *aabb.Index
	posEqualEps          float64
	sliceJoinEps         float64
	offsetDistEps        float64
	handleSelfIntersects bool
}

// Option configures an [Options] value.
type Option func(*Options)

// Default returns the option set's documented defaults:
// pos_equal_eps=1e-5, slice_join_eps=1e-4, offset_dist_eps=1e-4, handle_self_intersects=false.
func Default() Options {
	return Options{
		posEqualEps:          1e-5,
		sliceJoinEps:         1e-4,
		offsetDistEps:        1e-4,
		handleSelfIntersects: false,
	}
}

// WithAABBIndex supplies a precomputed index over the original polyline's segments, so
// the caller can reuse one built once across repeated offsets of the same input.
func WithAABBIndex(index *aabb.Index) Option {
	return func(o *Options) { o.index = index }
}

// WithPosEqualEps overrides the position-equality tolerance used to deduplicate
// intersection and join endpoints.
func WithPosEqualEps(eps float64) Option {
	return func(o *Options) { o.posEqualEps = eps }
}

// WithSliceJoinEps overrides the tolerance used to decide whether two slice endpoints
// are close enough to stitch together.
func WithSliceJoinEps(eps float64) Option {
	return func(o *Options) { o.sliceJoinEps = eps }
}

// WithOffsetDistEps overrides the tolerance used when testing whether a raw offset
// sample point lies at least |d| from the original polyline.
func WithOffsetDistEps(eps float64) Option {
	return func(o *Options) { o.offsetDistEps = eps }
}

// WithHandleSelfIntersects toggles whether raw offset self-intersections are computed
// and cut on. Disabling this is a caller assertion that the raw offset will not
// self-intersect, and skips that pass entirely.
func WithHandleSelfIntersects(enabled bool) Option {
	return func(o *Options) { o.handleSelfIntersects = enabled }
}

func apply(opts []Option) Options {
	o := Default()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
