package intrinsic

import (
	"github.com/phonlab/vlnorm/conversion"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/norm"
	"github.com/phonlab/vlnorm/validation"
)

// formantChoice is the column requirement shared by all intrinsic
// normalizers: at least one canonical formant column.
func formantChoice() validation.ColumnSpec {
	return validation.ColumnSpec{
		Choice: map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
	}
}

// elementwise applies a scalar conversion to every formant column of a group.
func elementwise(g *frame.Frame, ctx *norm.Context, convert func(float64) float64) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		nums, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		conversion.InPlace(nums, convert)
	}

	return g, nil
}

// Bark normalizes formants onto the Bark scale. The "method" option selects
// one of the published conversion formulas (default Traunmuller).
type Bark struct {
	*norm.Base
}

// NewBark constructs a Bark normalizer.
func NewBark(defaults norm.Options) *Bark {
	b := &Bark{}
	b.Base = norm.NewBase(norm.Config{
		Name:     "bark",
		Columns:  formantChoice(),
		Defaults: defaults,
	}, b)

	return b
}

func (b *Bark) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	method, _ := ctx.Options.String("method")
	convert, err := conversion.BarkConverter(conversion.BarkMethod(method))
	if err != nil {
		return nil, err
	}

	return elementwise(g, ctx, convert)
}

// Erb normalizes formants onto the approximate ERB scale.
type Erb struct {
	*norm.Base
}

// NewErb constructs an Erb normalizer.
func NewErb(defaults norm.Options) *Erb {
	e := &Erb{}
	e.Base = norm.NewBase(norm.Config{
		Name:     "erb",
		Columns:  formantChoice(),
		Defaults: defaults,
	}, e)

	return e
}

func (e *Erb) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return elementwise(g, ctx, conversion.HzToErb)
}

// Mel normalizes formants onto the mel scale.
type Mel struct {
	*norm.Base
}

// NewMel constructs a Mel normalizer.
func NewMel(defaults norm.Options) *Mel {
	m := &Mel{}
	m.Base = norm.NewBase(norm.Config{
		Name:     "mel",
		Columns:  formantChoice(),
		Defaults: defaults,
	}, m)

	return m
}

func (m *Mel) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return elementwise(g, ctx, conversion.HzToMel)
}

// Log normalizes formants onto the natural logarithmic scale.
type Log struct {
	*norm.Base
}

// NewLog constructs a Log normalizer.
func NewLog(defaults norm.Options) *Log {
	l := &Log{}
	l.Base = norm.NewBase(norm.Config{
		Name:     "log",
		Columns:  formantChoice(),
		Defaults: defaults,
	}, l)

	return l
}

func (l *Log) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return elementwise(g, ctx, conversion.HzToLog)
}

// Log10 normalizes formants onto the base-10 logarithmic scale.
type Log10 struct {
	*norm.Base
}

// NewLog10 constructs a Log10 normalizer.
func NewLog10(defaults norm.Options) *Log10 {
	l := &Log10{}
	l.Base = norm.NewBase(norm.Config{
		Name:     "log10",
		Columns:  formantChoice(),
		Defaults: defaults,
	}, l)

	return l
}

func (l *Log10) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return elementwise(g, ctx, conversion.HzToLog10)
}
