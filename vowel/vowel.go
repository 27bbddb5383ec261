package vowel

import (
	"github.com/phonlab/vlnorm/conversion"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/norm"
	"github.com/phonlab/vlnorm/validation"
)

// BarkDifference replaces absolute formant positions with Bark-scale
// distances between adjacent formants: z1-z0, z2-z1 and z3-z2, where zN is
// the Bark value of formant N. The z1-z0 column needs an F0 column and is
// omitted without one. The original formant columns are dropped from the
// result; the "method" option selects the Bark conversion formula.
type BarkDifference struct {
	*norm.Base
}

// differences lists the output columns with their operand slots.
var differences = []struct {
	name     string
	from, to string
}{
	{"z1-z0", "f0", "f1"},
	{"z2-z1", "f1", "f2"},
	{"z3-z2", "f2", "f3"},
}

// NewBarkDifference constructs a BarkDifference normalizer.
func NewBarkDifference(defaults norm.Options) *BarkDifference {
	b := &BarkDifference{}
	b.Base = norm.NewBase(norm.Config{
		Name: "barkdiff",
		Columns: validation.ColumnSpec{
			Required: []string{"f1", "f2", "f3"},
			Returns:  []string{"z1-z0", "z2-z1", "z3-z2"},
		},
		Defaults: defaults,
	}, b)

	return b
}

func (b *BarkDifference) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	method, _ := ctx.Options.String("method")
	bark, err := conversion.BarkConverter(conversion.BarkMethod(method))
	if err != nil {
		return nil, err
	}

	for _, diff := range differences {
		from := validation.Resolve(diff.from, ctx.Aliases)
		to := validation.Resolve(diff.to, ctx.Aliases)
		if !g.Has(from) || !g.Has(to) {
			continue
		}
		lower, err := g.Numeric(from)
		if err != nil {
			return nil, err
		}
		upper, err := g.Numeric(to)
		if err != nil {
			return nil, err
		}

		z := make([]float64, len(lower))
		for i := range z {
			z[i] = bark(upper[i]) - bark(lower[i])
		}
		if err = g.SetNumeric(diff.name, z); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// PostNormalize drops the original formant columns, leaving only the
// difference columns alongside the non-formant data.
func (b *BarkDifference) PostNormalize(df *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	dropped := append([]string(nil), ctx.FormantColumns...)
	for _, slot := range []string{"f0", "f1", "f2", "f3", "f4"} {
		dropped = append(dropped, slot, validation.Resolve(slot, ctx.Aliases))
	}
	df.Drop(dropped...)

	return df, nil
}
