package centroid

import (
	"math"

	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/norm"
	"github.com/phonlab/vlnorm/validation"
)

// vowelMean returns the mean of a formant column over the rows labelled
// with the given vowel.
func vowelMean(g *frame.Frame, ctx *norm.Context, vowel, formant string) (float64, error) {
	labels, err := g.Labels(validation.Resolve("vowel", ctx.Aliases))
	if err != nil {
		return 0, err
	}
	values, err := g.Numeric(validation.Resolve(formant, ctx.Aliases))
	if err != nil {
		return 0, err
	}

	mask := make([]bool, len(labels))
	for i, label := range labels {
		mask[i] = label == vowel
	}

	return norm.MeanWhere(values, mask), nil
}

// distinctVowels lists the vowels of a group in first-seen order.
func distinctVowels(g *frame.Frame, ctx *norm.Context) ([]string, error) {
	labels, err := g.Labels(validation.Resolve("vowel", ctx.Aliases))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}

	return out, nil
}

// apiceStats stores the fleece and trap means for f1 and f2, plus the
// derived goose point: both goose formants take the fleece F1 mean.
func apiceStats(g *frame.Frame, ctx *norm.Context) error {
	fleece, _ := ctx.Options.String("fleece")
	trap, _ := ctx.Options.String("trap")

	for _, formant := range []string{"f1", "f2"} {
		fleeceMean, err := vowelMean(g, ctx, fleece, formant)
		if err != nil {
			return err
		}
		trapMean, err := vowelMean(g, ctx, trap, formant)
		if err != nil {
			return err
		}
		ctx.Constants[formant+"_fleece"] = fleeceMean
		ctx.Constants[formant+"_trap"] = trapMean
	}

	ctx.Constants["f1_goose"] = ctx.Constants["f1_fleece"]
	ctx.Constants["f2_goose"] = ctx.Constants["f1_fleece"]

	return nil
}

// divideByCentroids rescales f1 and f2 by their centroid constants.
func divideByCentroids(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, formant := range []string{"f1", "f2"} {
		values, err := g.Numeric(validation.Resolve(formant, ctx.Aliases))
		if err != nil {
			return nil, err
		}
		centroid := ctx.Constants[formant+"_centroid"]
		for i, v := range values {
			values[i] = v / centroid
		}
	}

	return g, nil
}

func wattFabriciusConfig(name string, action norm.Action, defaults norm.Options) norm.Config {
	return norm.Config{
		Name: name,
		Columns: validation.ColumnSpec{
			Required: []string{"speaker", "vowel", "f1", "f2"},
		},
		Keywords: validation.KeywordSpec{Required: []string{"fleece", "trap"}},
		Groups:   []string{"speaker"},
		Actions:  map[string]norm.Action{"speaker": action},
		Defaults: defaults,
	}
}

// WattFabricius normalizes f1 and f2 against the mean of the three corner
// points: centroid(F) = (fleece(F) + trap(F) + goose(F)) / 3.
type WattFabricius struct {
	*norm.Base
}

// NewWattFabricius constructs the original Watt-Fabricius normalizer.
func NewWattFabricius(defaults norm.Options) *WattFabricius {
	w := &WattFabricius{}
	w.Base = norm.NewBase(wattFabriciusConfig("wattfabricius", wattFabriciusStats, defaults), w)

	return w
}

func wattFabriciusStats(g *frame.Frame, ctx *norm.Context) error {
	if err := apiceStats(g, ctx); err != nil {
		return err
	}

	for _, formant := range []string{"f1", "f2"} {
		ctx.Constants[formant+"_centroid"] = (ctx.Constants[formant+"_fleece"] +
			ctx.Constants[formant+"_trap"] +
			ctx.Constants[formant+"_goose"]) / 3
	}

	return nil
}

func (w *WattFabricius) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return divideByCentroids(g, ctx)
}

// WattFabricius2 drops trap from the F2 centroid:
// centroid(F2) = (fleece(F2) + goose(F2)) / 2.
type WattFabricius2 struct {
	*norm.Base
}

// NewWattFabricius2 constructs the second Watt-Fabricius variant.
func NewWattFabricius2(defaults norm.Options) *WattFabricius2 {
	w := &WattFabricius2{}
	w.Base = norm.NewBase(wattFabriciusConfig("wattfabricius2", wattFabricius2Stats, defaults), w)

	return w
}

func wattFabricius2Stats(g *frame.Frame, ctx *norm.Context) error {
	if err := wattFabriciusStats(g, ctx); err != nil {
		return err
	}
	ctx.Constants["f2_centroid"] = (ctx.Constants["f2_fleece"] + ctx.Constants["f2_goose"]) / 2

	return nil
}

func (w *WattFabricius2) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return divideByCentroids(g, ctx)
}

// WattFabricius3 derives the goose point empirically: for each formant it
// takes the minimum per-vowel mean over the point vowels (all vowels of the
// speaker when the point_vowels keyword is unset), and drops trap from the
// F2 centroid as WattFabricius2 does.
type WattFabricius3 struct {
	*norm.Base
}

// NewWattFabricius3 constructs the third Watt-Fabricius variant.
func NewWattFabricius3(defaults norm.Options) *WattFabricius3 {
	w := &WattFabricius3{}
	w.Base = norm.NewBase(wattFabriciusConfig("wattfabricius3", wattFabricius3Stats, defaults), w)

	return w
}

func wattFabricius3Stats(g *frame.Frame, ctx *norm.Context) error {
	if err := apiceStats(g, ctx); err != nil {
		return err
	}

	points := ctx.Options.Strings("point_vowels")
	if len(points) == 0 {
		var err error
		if points, err = distinctVowels(g, ctx); err != nil {
			return err
		}
	}

	for _, formant := range []string{"f1", "f2"} {
		goose := math.NaN()
		for _, vowel := range points {
			mean, err := vowelMean(g, ctx, vowel, formant)
			if err != nil {
				return err
			}
			if math.IsNaN(mean) {
				continue
			}
			if math.IsNaN(goose) || mean < goose {
				goose = mean
			}
		}
		ctx.Constants[formant+"_goose"] = goose
	}

	ctx.Constants["f1_centroid"] = (ctx.Constants["f1_fleece"] +
		ctx.Constants["f1_trap"] +
		ctx.Constants["f1_goose"]) / 3
	ctx.Constants["f2_centroid"] = (ctx.Constants["f2_fleece"] + ctx.Constants["f2_goose"]) / 2

	return nil
}

func (w *WattFabricius3) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	return divideByCentroids(g, ctx)
}

// Bigham normalizes every formant against the mean of the per-vowel means
// of a caller-supplied apice set, scaled to percent.
type Bigham struct {
	*norm.Base
}

// NewBigham constructs a Bigham normalizer.
func NewBigham(defaults norm.Options) *Bigham {
	b := &Bigham{}
	b.Base = norm.NewBase(norm.Config{
		Name: "bigham",
		Columns: validation.ColumnSpec{
			Required: []string{"speaker", "vowel"},
			Choice:   map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
		},
		Keywords: validation.KeywordSpec{Required: []string{"apices"}},
		Groups:   []string{"speaker"},
		Actions:  map[string]norm.Action{"speaker": bighamStats},
		Defaults: defaults,
	}, b)

	return b
}

func bighamStats(g *frame.Frame, ctx *norm.Context) error {
	apices := ctx.Options.Strings("apices")
	for _, column := range ctx.FormantColumns {
		sum, count := 0.0, 0
		for _, vowel := range apices {
			mean, err := vowelMean(g, ctx, vowel, column)
			if err != nil {
				return err
			}
			if math.IsNaN(mean) {
				continue
			}
			sum += mean
			count++
		}
		centroid := math.NaN()
		if count > 0 {
			centroid = sum / float64(count)
		}
		ctx.Constants[column+"_centroid"] = centroid
	}

	return nil
}

func (b *Bigham) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		centroid := ctx.Constants[column+"_centroid"]
		for i, v := range values {
			values[i] = v / centroid * 100
		}
	}

	return g, nil
}

// Schwa centres the vowel space on a single mid vowel: every formant is
// divided by the speaker's schwa mean and shifted to zero.
type Schwa struct {
	*norm.Base
}

// NewSchwa constructs a Schwa normalizer.
func NewSchwa(defaults norm.Options) *Schwa {
	s := &Schwa{}
	s.Base = norm.NewBase(norm.Config{
		Name: "schwa",
		Columns: validation.ColumnSpec{
			Required: []string{"speaker", "vowel"},
			Choice:   map[string][]string{"formants": {"f0", "f1", "f2", "f3"}},
		},
		Keywords: validation.KeywordSpec{Required: []string{"schwa"}},
		Groups:   []string{"speaker"},
		Actions:  map[string]norm.Action{"speaker": schwaStats},
		Defaults: defaults,
	}, s)

	return s
}

func schwaStats(g *frame.Frame, ctx *norm.Context) error {
	schwa, _ := ctx.Options.String("schwa")
	for _, column := range ctx.FormantColumns {
		centroid, err := vowelMean(g, ctx, schwa, column)
		if err != nil {
			return err
		}
		ctx.Constants[column+"_centroid"] = centroid
	}

	return nil
}

func (s *Schwa) Apply(g *frame.Frame, ctx *norm.Context) (*frame.Frame, error) {
	for _, column := range ctx.FormantColumns {
		values, err := g.Numeric(column)
		if err != nil {
			return nil, err
		}
		centroid := ctx.Constants[column+"_centroid"]
		for i, v := range values {
			values[i] = v/centroid - 1
		}
	}

	return g, nil
}
