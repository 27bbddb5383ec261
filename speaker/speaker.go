package speaker

import (
	"math"

	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/norm"
	"github.com/phonlab/vlnorm/validation"
)

// config declares the shape every speaker-intrinsic normalizer shares: a
// required speaker column, at least one formant column, and a per-speaker
// constants action.
func config(name string, action norm.Action, defaults norm.Options) norm.Config {
	return norm.Config{
		Name: name,
		Columns: validation.ColumnSpec{
			Required: []string{"speaker"},
			Choice:   map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
		},
		Groups:   []string{"speaker"},
		Actions:  map[string]norm.Action{"speaker": action},
		Defaults: defaults,
	}
}

// LCE implements linear compression and expansion normalization: each
// formant is scaled by the speaker's maximum for that formant.
type LCE struct {
	*norm.Base
}

// NewLCE constructs an LCE normalizer.
func NewLCE(defaults norm.Options) *LCE {
	l := &LCE{}
	l.Base = norm.NewBase(config("lce", maxima, defaults), l)

	return l
}

func maxima(g *frame.Frame, ctx *norm.Context) error {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return err
		}
		ctx.Constants[column+"_max"] = norm.Max(values)
	}

	return nil
}

func (l *LCE) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		max := ctx.Constants[column+"_max"]
		for i, v := range values {
			if max == 0 {
				values[i] = 0
				continue
			}
			values[i] = v / max
		}
	}

	return g, nil
}

// Gerstman implements range normalization: each formant is rescaled onto
// [0, 999] against the speaker's range for that formant.
type Gerstman struct {
	*norm.Base
}

// NewGerstman constructs a Gerstman normalizer.
func NewGerstman(defaults norm.Options) *Gerstman {
	n := &Gerstman{}
	n.Base = norm.NewBase(config("gerstman", extrema, defaults), n)

	return n
}

func extrema(g *frame.Frame, ctx *norm.Context) error {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return err
		}
		ctx.Constants[column+"_min"] = norm.Min(values)
		ctx.Constants[column+"_max"] = norm.Max(values)
	}

	return nil
}

func (n *Gerstman) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		min := ctx.Constants[column+"_min"]
		span := ctx.Constants[column+"_max"] - min
		for i, v := range values {
			if span == 0 {
				values[i] = 0
				continue
			}
			values[i] = 999 * (v - min) / span
		}
	}

	return g, nil
}

// Lobanov implements z-score normalization: each formant is centred on the
// speaker's mean and scaled by the speaker's population standard deviation.
type Lobanov struct {
	*norm.Base
}

// NewLobanov constructs a Lobanov normalizer.
func NewLobanov(defaults norm.Options) *Lobanov {
	n := &Lobanov{}
	n.Base = norm.NewBase(config("lobanov", moments, defaults), n)

	return n
}

func moments(g *frame.Frame, ctx *norm.Context) error {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return err
		}
		ctx.Constants[column+"_mu"] = norm.Mean(values)
		ctx.Constants[column+"_sigma"] = norm.PopStd(values)
	}

	return nil
}

func (n *Lobanov) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		mu := ctx.Constants[column+"_mu"]
		sigma := ctx.Constants[column+"_sigma"]
		for i, v := range values {
			if sigma == 0 {
				values[i] = 0
				continue
			}
			values[i] = (v - mu) / sigma
		}
	}

	return g, nil
}

// Neary implements log-mean normalization: each formant is log-transformed
// and centred on a per-speaker log mean. The plain variants centre each
// formant on its own log mean; the GM variants centre every formant on the
// grand log mean over all formant columns. The "exp" option exponentiates
// the centred values back into a hertz-like scale.
type Neary struct {
	*norm.Base
}

func newNeary(name string, action norm.Action, defaults norm.Options) *Neary {
	n := &Neary{}
	n.Base = norm.NewBase(config(name, action, defaults), n)

	return n
}

// NewNeary constructs the per-formant log-mean normalizer.
func NewNeary(defaults norm.Options) *Neary {
	return newNeary("neary", logMeans, defaults)
}

// NewNearyExp is NewNeary with the exp option on by default.
func NewNearyExp(defaults norm.Options) *Neary {
	return newNeary("nearyexp", logMeans, norm.Options{"exp": true}.Merge(defaults))
}

// NewNearyGM constructs the grand-log-mean normalizer.
func NewNearyGM(defaults norm.Options) *Neary {
	return newNeary("nearygm", grandLogMean, defaults)
}

// NewNearyGMExp is NewNearyGM with the exp option on by default.
func NewNearyGMExp(defaults norm.Options) *Neary {
	return newNeary("nearygmexp", grandLogMean, norm.Options{"exp": true}.Merge(defaults))
}

func logMeans(g *frame.Frame, ctx *norm.Context) error {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return err
		}
		ctx.Constants[column+"_mu_log"] = norm.MeanLog(values)
	}

	return nil
}

func grandLogMean(g *frame.Frame, ctx *norm.Context) error {
	var all []float64
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return err
		}
		all = append(all, values...)
	}

	grand := norm.MeanLog(all)
	for _, column := range ctx.FormantColumns {
		ctx.Constants[column+"_mu_log"] = grand
	}

	return nil
}

func (n *Neary) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	exp := ctx.Options.Bool("exp")
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		mu := ctx.Constants[column+"_mu_log"]
		for i, v := range values {
			centred := math.Log(v) - mu
			if exp {
				centred = math.Exp(centred)
			}
			values[i] = centred
		}
	}

	return g, nil
}
