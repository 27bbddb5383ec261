package gender

import (
	"github.com/phonlab/vlnorm/conversion"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/norm"
	"github.com/phonlab/vlnorm/validation"
)

// labelDefault supplies the conventional single-letter gender labels.
func labelDefault(keyword string) (any, bool) {
	switch keyword {
	case "female":
		return "F", true
	case "male":
		return "M", true
	}

	return nil, false
}

// femaleIndicator returns a 0/1 mask of the rows labelled with the female
// gender label.
func femaleIndicator(g *frame.Frame, ctx *norm.Context) ([]float64, error) {
	labels, err := g.Labels(validation.Resolve("gender", ctx.Aliases))
	if err != nil {
		return nil, err
	}
	female, _ := ctx.Options.String("female")

	indicator := make([]float64, len(labels))
	for i, label := range labels {
		if label == female {
			indicator[i] = 1
		}
	}

	return indicator, nil
}

// Bladen converts every formant to the Bark scale and subtracts one Bark
// from the rows of female speakers. The "method" option selects the Bark
// conversion formula.
type Bladen struct {
	*norm.Base
}

// NewBladen constructs a Bladen normalizer.
func NewBladen(defaults norm.Options) *Bladen {
	b := &Bladen{}
	b.Base = norm.NewBase(norm.Config{
		Name: "bladen",
		Columns: validation.ColumnSpec{
			Required: []string{"gender"},
			Choice:   map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
		},
		Keywords: validation.KeywordSpec{
			Choice: map[string][]string{"gender_label": {"female", "male"}},
		},
		Defaults: defaults,
	}, b)

	return b
}

func (b *Bladen) KeywordDefault(keyword string, _ *frame.Frame) (any, bool) {
	return labelDefault(keyword)
}

func (b *Bladen) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	method, _ := ctx.Options.String("method")
	bark, err := conversion.BarkConverter(conversion.BarkMethod(method))
	if err != nil {
		return nil, err
	}
	indicator, err := femaleIndicator(g, ctx)
	if err != nil {
		return nil, err
	}

	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = bark(v) - indicator[i]
		}
	}

	return g, nil
}

// Nordstrom rescales the formants of female speakers by the ratio of male
// to female mean F3, estimated over open vowels (F1 > 600 Hz) across the
// whole dataset: F' = F · (1 + I(female) · (mu_male/mu_female − 1)).
type Nordstrom struct {
	*norm.Base
}

// NewNordstrom constructs a Nordstrom normalizer.
func NewNordstrom(defaults norm.Options) *Nordstrom {
	n := &Nordstrom{}
	n.Base = norm.NewBase(norm.Config{
		Name: "nordstrom",
		Columns: validation.ColumnSpec{
			Required: []string{"f1", "f3", "gender"},
			Choice:   map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
		},
		Keywords: validation.KeywordSpec{
			Choice: map[string][]string{"gender_label": {"female", "male"}},
		},
		Defaults: defaults,
	}, n)

	return n
}

func (n *Nordstrom) KeywordDefault(keyword string, _ *frame.Frame) (any, bool) {
	return labelDefault(keyword)
}

// PreNormalize computes the gender-split open-vowel F3 means once over the
// whole frame, before any partitioning.
func (n *Nordstrom) PreNormalize(df *frame.Frame, ctx *norm.Context) error {
	f1, err := df.Numeric(validation.Resolve("f1", ctx.Aliases))
	if err != nil {
		return err
	}
	f3, err := df.Numeric(validation.Resolve("f3", ctx.Aliases))
	if err != nil {
		return err
	}
	labels, err := df.Labels(validation.Resolve("gender", ctx.Aliases))
	if err != nil {
		return err
	}
	female, _ := ctx.Options.String("female")
	male, _ := ctx.Options.String("male")

	femaleMask := make([]bool, len(labels))
	maleMask := make([]bool, len(labels))
	for i, label := range labels {
		open := f1[i] > 600
		femaleMask[i] = open && label == female
		maleMask[i] = open && label == male
	}

	ctx.Constants["mu_female"] = norm.MeanWhere(f3, femaleMask)
	ctx.Constants["mu_male"] = norm.MeanWhere(f3, maleMask)

	return nil
}

func (n *Nordstrom) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	indicator, err := femaleIndicator(g, ctx)
	if err != nil {
		return nil, err
	}
	ratio := ctx.Constants["mu_male"]/ctx.Constants["mu_female"] - 1

	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = v * (1 + indicator[i]*ratio)
		}
	}

	return g, nil
}
