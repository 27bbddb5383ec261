package data

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/phonlab/vlnorm/frame"
)

//go:embed pb1952.csv
var pb1952 []byte

var (
	mu      sync.Mutex
	caching = true
	cached  *frame.Frame
)

// EnableCache toggles caching of the parsed dataset. Disabling the cache
// also drops the currently cached copy.
func EnableCache(enabled bool) {
	mu.Lock()
	defer mu.Unlock()

	caching = enabled
	if !enabled {
		cached = nil
	}
}

// PB1952 returns the bundled Peterson-Barney dataset, restricted to the
// given columns when any are named. The returned frame is the caller's own
// copy and safe to mutate.
func PB1952(columns ...string) (*frame.Frame, error) {
	df, err := load()
	if err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		return df.Select(columns...)
	}

	return df, nil
}

func load() (*frame.Frame, error) {
	mu.Lock()
	defer mu.Unlock()

	if caching && cached != nil {
		return cached.Clone(), nil
	}

	df, err := frame.ReadCSV(bytes.NewReader(pb1952), ',')
	if err != nil {
		return nil, err
	}
	if caching {
		cached = df.Clone()
	}

	return df, nil
}
