package norm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Registry errors.
var (
	// ErrNoNormalizer indicates an empty normalizer name.
	ErrNoNormalizer = errors.New("norm: no normalizer specified")

	// ErrUnknownNormalizer indicates a name matching no registered normalizer.
	ErrUnknownNormalizer = errors.New("norm: unknown normalizer")

	// ErrAmbiguousNormalizer indicates a prefix matching several registered
	// normalizers, none of them exactly.
	ErrAmbiguousNormalizer = errors.New("norm: ambiguous normalizer name")
)

// UnknownNormalizerError reports a lookup that matched nothing.
type UnknownNormalizerError struct {
	Name string
}

func (e *UnknownNormalizerError) Error() string {
	return fmt.Sprintf("norm: unknown normalizer %q", e.Name)
}

func (e *UnknownNormalizerError) Is(target error) bool {
	return target == ErrUnknownNormalizer
}

// AmbiguousNormalizerError reports a prefix lookup with several candidates.
type AmbiguousNormalizerError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousNormalizerError) Error() string {
	return fmt.Sprintf("norm: found %d normalizers matching %q: %s",
		len(e.Candidates), e.Name, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousNormalizerError) Is(target error) bool {
	return target == ErrAmbiguousNormalizer
}

// Ctor constructs a fresh Normalizer instance.
type Ctor func() Normalizer

// Registry is an explicit name→constructor index. Construct with
// NewRegistry; registration is not safe for concurrent use, lookups are
// safe once registration has finished.
type Registry struct {
	ctors map[string]Ctor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Ctor)}
}

// Register indexes a constructor under one or more names. Re-registering a
// name overwrites silently.
func (r *Registry) Register(ctor Ctor, names ...string) {
	for _, name := range names {
		r.ctors[name] = ctor
	}
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Resolve looks a name up case-insensitively by prefix. An exact match
// wins even when longer names share the prefix; a prefix matching exactly
// one name resolves to it; several matches without an exact one are
// ambiguous; no match is unknown; an empty name is ErrNoNormalizer.
func (r *Registry) Resolve(name string) (Ctor, error) {
	if name == "" {
		return nil, ErrNoNormalizer
	}

	query := strings.ToLower(name)
	exact := ""
	var candidates []string
	for _, registered := range r.Names() {
		lower := strings.ToLower(registered)
		if lower == query {
			exact = registered
		}
		if strings.HasPrefix(lower, query) {
			candidates = append(candidates, registered)
		}
	}

	switch {
	case len(candidates) == 1:
		return r.ctors[candidates[0]], nil
	case exact != "":
		return r.ctors[exact], nil
	case len(candidates) > 1:
		return nil, &AmbiguousNormalizerError{Name: name, Candidates: candidates}
	}

	return nil, &UnknownNormalizerError{Name: name}
}
