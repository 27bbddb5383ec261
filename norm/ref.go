package norm

import (
	"errors"

	"github.com/phonlab/vlnorm/frame"
)

// ErrEmptyRef indicates a Ref carrying none of the three method forms.
var ErrEmptyRef = errors.New("norm: empty normalizer reference")

// Ref models the three forms a method argument can take — a registered
// name, a constructor, or a ready instance — as an explicit sum instead of
// duck typing. Build one with ByName, ByCtor or ByInstance.
type Ref struct {
	name     string
	ctor     Ctor
	instance Normalizer
}

// ByName refers to a normalizer by its registered name (prefix lookup).
func ByName(name string) Ref {
	return Ref{name: name}
}

// ByCtor refers to a normalizer by constructor; Resolve instantiates it.
func ByCtor(ctor Ctor) Ref {
	return Ref{ctor: ctor}
}

// ByInstance refers to an already-constructed normalizer.
func ByInstance(n Normalizer) Ref {
	return Ref{instance: n}
}

// Resolve produces the Normalizer the Ref designates, consulting the
// registry for name refs.
func (r Ref) Resolve(registry *Registry) (Normalizer, error) {
	switch {
	case r.instance != nil:
		return r.instance, nil
	case r.ctor != nil:
		return r.ctor(), nil
	case r.name != "":
		ctor, err := registry.Resolve(r.name)
		if err != nil {
			return nil, err
		}

		return ctor(), nil
	}

	return nil, ErrEmptyRef
}

// Normalize resolves ref against registry and normalizes df with the given
// options. This is the engine-level entry point; the vlnorm root package
// wraps it with a pre-populated registry and file I/O.
func Normalize(df *frame.Frame, ref Ref, registry *Registry, opts Options) (*frame.Frame, error) {
	normalizer, err := ref.Resolve(registry)
	if err != nil {
		return nil, err
	}

	return normalizer.Normalize(df, opts)
}
