package norm

import (
	"strings"

	"github.com/phonlab/vlnorm/formants"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/validation"
)

// PartitionConfig bundles the state threaded through the recursive
// partitioning of a frame.
type PartitionConfig struct {
	// Formants holds the resolved formant rows (missing columns are dropped
	// per sub-frame, not here).
	Formants []formants.Row

	// Groups lists the grouping columns, outermost first. Recursion order
	// follows this list exactly.
	Groups []string

	// Actions maps a grouping column to the constants computation invoked
	// on entering each of its groups.
	Actions map[string]Action

	// Constants is the shared constant store. The SAME map is passed to
	// every recursive call; see the Constants type documentation.
	Constants Constants

	// Aliases maps canonical column names to actual frame columns.
	Aliases map[string]string

	// Returns names the columns written back to the caller's frame; when
	// empty, the resolved formant columns are written back.
	Returns []string

	// Rename is a "{}"-style pattern. When set, transformed columns are
	// added under the rendered name and the originals are retained;
	// otherwise originals are overwritten in place.
	Rename string

	// Options holds the merged keyword options, passed through to actions
	// and the transform.
	Options Options
}

// Partition recursively groups df by cfg.Groups and applies tr at the
// leaves, per-group constants first.
//
// At each grouping level the frame splits by the distinct values of the
// first group column (alias-resolved, ascending key order). For each
// sub-frame the group's action (if any) recomputes constants, then the
// remaining groups are processed recursively and the results concatenated;
// row count is conserved, row order follows group order. With no groups
// left, aliased columns are copied to their canonical names in a working
// copy, the transform runs, and its output columns are written back into a
// copy of df per cfg.Rename. A leaf with zero surviving formant columns is
// a no-op copy.
func Partition(df *frame.Frame, tr Transform, cfg *PartitionConfig) (*frame.Frame, error) {
	if len(cfg.Groups) > 0 {
		return partitionGroups(df, tr, cfg)
	}

	return applyLeaf(df, tr, cfg)
}

func partitionGroups(df *frame.Frame, tr Transform, cfg *PartitionConfig) (*frame.Frame, error) {
	group := cfg.Groups[0]
	column := validation.Resolve(group, cfg.Aliases)

	groups, err := df.GroupBy(column)
	if err != nil {
		return nil, err
	}

	out := frame.New()
	for _, g := range groups {
		if action := cfg.Actions[group]; action != nil {
			prepared := prepare(g.Frame.Clone(), cfg)
			if err = action(prepared, leafContext(prepared, cfg)); err != nil {
				return nil, err
			}
		}

		rest := *cfg
		rest.Groups = cfg.Groups[1:]
		normed, err := Partition(g.Frame, tr, &rest)
		if err != nil {
			return nil, err
		}
		if err = out.Append(normed); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func applyLeaf(df *frame.Frame, tr Transform, cfg *PartitionConfig) (*frame.Frame, error) {
	result := df.Clone()
	working := prepare(df.Clone(), cfg)
	ctx := leafContext(working, cfg)
	if len(ctx.FormantColumns) == 0 {
		return result, nil
	}

	normed, err := tr.Apply(working, ctx)
	if err != nil {
		return nil, err
	}

	returns := cfg.Returns
	if len(returns) == 0 {
		returns = ctx.FormantColumns
	}

	for _, column := range returns {
		if !normed.Has(column) {
			continue
		}
		target := column
		if cfg.Rename != "" {
			target = renderRename(cfg.Rename, column)
		}
		if cfg.Rename == "" && result.Has(column) {
			if err = result.SetFrom(normed, column); err != nil {
				return nil, err
			}
			continue
		}
		if err = adopt(result, normed, column, target); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// prepare copies aliased formant and grouping columns into their canonical
// names so actions and transforms can refer to canonical names uniformly.
func prepare(df *frame.Frame, cfg *PartitionConfig) *frame.Frame {
	columns := append(formants.Columns(cfg.Formants), cfg.Groups...)
	for _, column := range columns {
		alias := validation.Resolve(column, cfg.Aliases)
		if alias != column && df.Has(alias) {
			// CopyColumn only fails on a missing source, checked above.
			_ = df.CopyColumn(alias, column)
		}
	}

	return df
}

// leafContext resolves the formant rows against the frame at hand and
// packages the shared state for an action or transform invocation.
func leafContext(df *frame.Frame, cfg *PartitionConfig) *Context {
	rows := make([]formants.Row, len(cfg.Formants))
	for i, row := range cfg.Formants {
		rows[i] = row.Present(df)
	}

	return &Context{
		Formants:       rows,
		FormantColumns: formants.Columns(rows),
		Constants:      cfg.Constants,
		Aliases:        cfg.Aliases,
		Options:        cfg.Options,
	}
}

// renderRename renders a "{}"-style pattern against a column name.
func renderRename(pattern, column string) string {
	return strings.ReplaceAll(pattern, "{}", column)
}

// adopt copies column src of from into dst under the name to, preserving
// the column kind.
func adopt(dst, from *frame.Frame, src, to string) error {
	if from.IsNumeric(src) {
		values, err := from.Numeric(src)
		if err != nil {
			return err
		}

		return dst.SetNumeric(to, append([]float64(nil), values...))
	}

	values, err := from.Labels(src)
	if err != nil {
		return err
	}

	return dst.SetLabels(to, append([]string(nil), values...))
}
