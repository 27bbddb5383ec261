package norm

import (
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/validation"
)

// Default is the identity normalizer: it returns formant data unaltered
// (modulo rename), so it can serve as a control when comparing methods.
type Default struct {
	*Base
}

// NewDefault constructs the identity normalizer.
func NewDefault(defaults Options) *Default {
	d := &Default{}
	d.Base = NewBase(Config{
		Name: "default",
		Columns: validation.ColumnSpec{
			Choice: map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
		},
		Defaults: defaults,
	}, d)

	return d
}

// Apply returns the group unchanged.
func (d *Default) Apply(g *frame.Frame, _ *Context) (*frame.Frame, error) {
	return g, nil
}

// Chain runs several normalizers in sequence, feeding each one's output to
// the next. Options are passed through to every stage; use per-instance
// defaults for stage-specific settings (e.g. a rename on the first stage
// and a formant list on the second).
type Chain struct {
	normalizers []Normalizer
}

// NewChain composes normalizers into a single Normalizer.
func NewChain(normalizers ...Normalizer) *Chain {
	return &Chain{normalizers: normalizers}
}

// Name returns "chain".
func (c *Chain) Name() string {
	return "chain"
}

// Normalize applies each stage in order.
func (c *Chain) Normalize(df *frame.Frame, opts Options) (*frame.Frame, error) {
	out := df
	for _, normalizer := range c.normalizers {
		normed, err := normalizer.Normalize(out, opts)
		if err != nil {
			return nil, err
		}
		out = normed
	}

	return out, nil
}
