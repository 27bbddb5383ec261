package norm

import (
	"github.com/phonlab/vlnorm/formants"
	"github.com/phonlab/vlnorm/frame"
)

// Constants is the mutable constant store for one Normalize call,
// conventionally keyed "{formant}_{statistic}" (f1_mu, f2_centroid, ...).
//
// One Constants map is shared by reference across the entire partition
// recursion: entering a group overwrites whatever the previous sibling
// wrote, and the group's transform reads the freshly written values.
// Constants accumulate downward; actions must not delete outer-scope
// entries.
type Constants map[string]float64

// Context carries the per-invocation state handed to actions, transforms
// and hooks.
type Context struct {
	// Formants holds the formant rows resolved against the current frame;
	// absent columns are already dropped.
	Formants []formants.Row

	// FormantColumns is the union of present formant columns across rows,
	// in first-seen order.
	FormantColumns []string

	// Constants is the shared constant store. See the type documentation.
	Constants Constants

	// Aliases maps canonical column names to the actual names in the frame.
	Aliases map[string]string

	// Options holds the merged constructor and call options.
	Options Options
}

// Action computes group-scoped constants when the partitioner enters a
// group. The frame g holds only the group's rows, with aliased columns
// already copied to their canonical names. Actions mutate ctx.Constants
// in place.
type Action func(g *frame.Frame, ctx *Context) error

// Transform is the leaf computation of a normalizer: it rewrites the
// formant columns of g and returns the transformed frame (which may be g
// itself). Selected via the registry rather than by runtime attribute
// lookup.
type Transform interface {
	Apply(g *frame.Frame, ctx *Context) (*frame.Frame, error)
}

// Normalizer is the uniform entry point shared by all normalizers.
//
// Normalize must not mutate df; implementations work on copies. A
// Normalizer instance is not safe for concurrent Normalize calls.
type Normalizer interface {
	Name() string
	Normalize(df *frame.Frame, opts Options) (*frame.Frame, error)
}

// KeywordDefaulter supplies per-normalizer defaults for declared keywords
// left unset by the caller (e.g. gender labels defaulting to "F"/"M").
type KeywordDefaulter interface {
	KeywordDefault(keyword string, df *frame.Frame) (any, bool)
}

// PreNormalizer runs after validation and before partitioning; used to
// precompute whole-frame constants (e.g. Nordstrom's F3 means).
type PreNormalizer interface {
	PreNormalize(df *frame.Frame, ctx *Context) error
}

// PostNormalizer runs on the assembled result after partitioning; used to
// reshape the output (e.g. dropping source formant columns).
type PostNormalizer interface {
	PostNormalize(df *frame.Frame, ctx *Context) (*frame.Frame, error)
}
