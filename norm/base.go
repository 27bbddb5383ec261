package norm

import (
	"github.com/phonlab/vlnorm/formants"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/validation"
)

// Config declares a normalizer's static metadata: its registered name,
// column and keyword requirements, grouping columns, per-group actions
// and constructor-time default options.
type Config struct {
	Name     string
	Columns  validation.ColumnSpec
	Keywords validation.KeywordSpec
	Groups   []string
	Actions  map[string]Action
	Defaults Options
}

// Base implements the Normalize pipeline shared by every normalizer:
//
//  1. merge constructor defaults with call options (call options win);
//  2. resolve the formant specification;
//  3. fill declared keywords from the transform's KeywordDefault hook;
//  4. validate required/choice columns and keywords;
//  5. reject grouping columns that collide with formant columns;
//  6. run the transform's PreNormalize hook;
//  7. partition and apply the transform;
//  8. run the transform's PostNormalize hook.
//
// Base stashes the merged options on itself between the internal calls of
// one Normalize invocation, so an instance must not be used concurrently.
type Base struct {
	config    Config
	transform Transform

	// options holds the merged options of the call in flight.
	options Options
}

// NewBase builds the shared pipeline around a transform. The transform may
// additionally implement KeywordDefaulter, PreNormalizer or PostNormalizer.
func NewBase(config Config, transform Transform) *Base {
	if config.Defaults == nil {
		config.Defaults = Options{}
	}

	return &Base{config: config, transform: transform}
}

// Name returns the normalizer's registered name.
func (b *Base) Name() string {
	return b.config.Name
}

// Groups returns the grouping columns, outermost first.
func (b *Base) Groups() []string {
	return append([]string(nil), b.config.Groups...)
}

// Columns returns the declared column requirements.
func (b *Base) Columns() validation.ColumnSpec {
	return b.config.Columns
}

// Keywords returns the declared keyword requirements.
func (b *Base) Keywords() validation.KeywordSpec {
	return b.config.Keywords
}

// Options returns the merged options of the Normalize call in flight.
func (b *Base) Options() Options {
	return b.options
}

// Normalize runs the pipeline over a copy of df and returns the result;
// df itself is never mutated.
func (b *Base) Normalize(df *frame.Frame, opts Options) (*frame.Frame, error) {
	merged := b.config.Defaults.Merge(opts)
	b.options = merged

	spec, err := merged.FormantSpec()
	if err != nil {
		return nil, err
	}
	rows, err := formants.Resolve(spec, df)
	if err != nil {
		return nil, err
	}

	b.fillKeywordDefaults(merged, df)

	known := append(b.config.Columns.All(), b.config.Groups...)
	known = append(known, formants.SlotNames[:]...)
	aliases := aliasesFor(known, merged)

	name := b.config.Name
	if err = validation.ValidateColumns(name, df, b.config.Columns, aliases); err != nil {
		return nil, err
	}
	if err = validation.ValidateKeywords(name, b.config.Keywords, merged); err != nil {
		return nil, err
	}
	formantChoice := map[string][]string{"formants": formants.Columns(rows)}
	if err = validation.ValidateGroups(name, nil, formantChoice, b.config.Groups, aliases); err != nil {
		return nil, err
	}

	constants := Constants{}
	ctx := &Context{
		Formants:       rows,
		FormantColumns: formants.Columns(rows),
		Constants:      constants,
		Aliases:        aliases,
		Options:        merged,
	}
	if pre, ok := b.transform.(PreNormalizer); ok {
		if err = pre.PreNormalize(df, ctx); err != nil {
			return nil, err
		}
	}

	out, err := Partition(df, b.transform, &PartitionConfig{
		Formants:  rows,
		Groups:    b.config.Groups,
		Actions:   b.config.Actions,
		Constants: constants,
		Aliases:   aliases,
		Returns:   b.config.Columns.Returns,
		Rename:    merged.Rename(),
		Options:   merged,
	})
	if err != nil {
		return nil, err
	}

	if post, ok := b.transform.(PostNormalizer); ok {
		return post.PostNormalize(out, ctx)
	}

	return out, nil
}

// fillKeywordDefaults asks the transform for defaults for declared
// keywords the caller left unset.
func (b *Base) fillKeywordDefaults(opts Options, df *frame.Frame) {
	defaulter, ok := b.transform.(KeywordDefaulter)
	if !ok {
		return
	}
	keywords := append([]string(nil), b.config.Keywords.Required...)
	for _, group := range b.config.Keywords.Choice {
		keywords = append(keywords, group...)
	}
	for _, keyword := range keywords {
		if value, set := opts[keyword]; set && value != nil {
			continue
		}
		if value, has := defaulter.KeywordDefault(keyword, df); has {
			opts[keyword] = value
		}
	}
}
