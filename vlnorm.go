package vlnorm

import (
	"path/filepath"

	"github.com/phonlab/vlnorm/centroid"
	"github.com/phonlab/vlnorm/frame"
	"github.com/phonlab/vlnorm/gender"
	"github.com/phonlab/vlnorm/intrinsic"
	"github.com/phonlab/vlnorm/norm"
	"github.com/phonlab/vlnorm/speaker"
	"github.com/phonlab/vlnorm/vowel"
)

// NewDefaultRegistry returns a registry with every built-in normalizer
// registered under its conventional name.
func NewDefaultRegistry() *norm.Registry {
	r := norm.NewRegistry()

	r.Register(func() norm.Normalizer { return norm.NewDefault(nil) }, "default")

	r.Register(func() norm.Normalizer { return intrinsic.NewBark(nil) }, "bark")
	r.Register(func() norm.Normalizer { return intrinsic.NewErb(nil) }, "erb")
	r.Register(func() norm.Normalizer { return intrinsic.NewMel(nil) }, "mel")
	r.Register(func() norm.Normalizer { return intrinsic.NewLog(nil) }, "log")
	r.Register(func() norm.Normalizer { return intrinsic.NewLog10(nil) }, "log10")

	r.Register(func() norm.Normalizer { return speaker.NewLCE(nil) }, "lce")
	r.Register(func() norm.Normalizer { return speaker.NewGerstman(nil) }, "gerstman")
	r.Register(func() norm.Normalizer { return speaker.NewLobanov(nil) }, "lobanov")
	r.Register(func() norm.Normalizer { return speaker.NewNeary(nil) }, "neary")
	r.Register(func() norm.Normalizer { return speaker.NewNearyExp(nil) }, "nearyexp")
	r.Register(func() norm.Normalizer { return speaker.NewNearyGM(nil) }, "nearygm")
	r.Register(func() norm.Normalizer { return speaker.NewNearyGMExp(nil) }, "nearygmexp")

	r.Register(func() norm.Normalizer { return centroid.NewWattFabricius(nil) },
		"wattfabricius", "wattfabricius1")
	r.Register(func() norm.Normalizer { return centroid.NewWattFabricius2(nil) }, "wattfabricius2")
	r.Register(func() norm.Normalizer { return centroid.NewWattFabricius3(nil) }, "wattfabricius3")
	r.Register(func() norm.Normalizer { return centroid.NewBigham(nil) }, "bigham")
	r.Register(func() norm.Normalizer { return centroid.NewSchwa(nil) }, "schwa")

	r.Register(func() norm.Normalizer { return gender.NewBladen(nil) }, "bladen")
	r.Register(func() norm.Normalizer { return gender.NewNordstrom(nil) }, "nordstrom")

	r.Register(func() norm.Normalizer { return vowel.NewBarkDifference(nil) }, "barkdiff")

	return r
}

var defaultRegistry = NewDefaultRegistry()

// DefaultRegistry returns the process-wide registry used by Normalize.
func DefaultRegistry() *norm.Registry {
	return defaultRegistry
}

// ListNormalizers returns the registered built-in names in sorted order.
func ListNormalizers() []string {
	return defaultRegistry.Names()
}

// Normalize resolves the method reference against the default registry and
// normalizes df; df itself is never mutated.
func Normalize(df *frame.Frame, method norm.Ref, opts norm.Options) (*frame.Frame, error) {
	return norm.Normalize(df, method, defaultRegistry, opts)
}

// NormalizeFile reads a delimited file, normalizes it, and writes the
// result to fileOut when non-empty. The normalized frame is returned either
// way.
func NormalizeFile(fileIn, fileOut string, method norm.Ref, sep rune, opts norm.Options) (*frame.Frame, error) {
	df, err := ReadCSV(fileIn, sep)
	if err != nil {
		return nil, err
	}

	out, err := Normalize(df, method, opts)
	if err != nil {
		return nil, err
	}

	if fileOut != "" {
		if err = out.WriteCSVFile(fileOut, sep); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// dataDir prefixes relative paths passed to ReadCSV.
var dataDir string

// SetDataDir sets the directory relative paths are resolved against; an
// empty value restores plain path handling.
func SetDataDir(dir string) {
	dataDir = dir
}

// ReadCSV reads a delimited file with a header row into a frame. Relative
// paths are resolved against the configured data directory, when set.
func ReadCSV(path string, sep rune) (*frame.Frame, error) {
	if dataDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dataDir, path)
	}

	return frame.ReadCSVFile(path, sep)
}
