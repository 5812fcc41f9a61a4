// Package registry turns indicator labels such as "MACD(12, 26, 9)" back
// into running indicators with a uniform, bar driven interface.
package registry

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

var (
	ErrUnknownIndicator = errors.New("unknown indicator")
	ErrMalformedLabel   = errors.New("malformed indicator label")
)

// Runner drives one indicator from bars and renders its outputs as text.
type Runner[T any] interface {
	String() string
	Columns() []string
	Push(bar *types.Bar[T]) []string
	Reset()
}

// Factory builds a runner from the label parameters. params is never nil;
// it holds the defaults when the label has none.
type Factory[T any] func(ar num.Arithmetic[T], params []string) (Runner[T], error)

type Metadata struct {
	Name        string
	Category    string // "trend", "momentum", "volatility", "volume", "price"
	Description string
	Parameters  []string
	Defaults    []string
}

type entry[T any] struct {
	factory  Factory[T]
	metadata Metadata
}

// Registry maps indicator names to factories.
type Registry[T any] struct {
	mu      sync.RWMutex
	ar      num.Arithmetic[T]
	entries map[string]entry[T]
}

// New returns a registry with every built-in indicator registered.
func New[T any](ar num.Arithmetic[T]) *Registry[T] {
	r := NewEmpty(ar)
	for _, b := range builtins[T]() {
		if err := r.Register(b.metadata, b.factory); err != nil {
			panic(err)
		}
	}
	return r
}

func NewEmpty[T any](ar num.Arithmetic[T]) *Registry[T] {
	return &Registry[T]{ar: ar, entries: make(map[string]entry[T])}
}

func (r *Registry[T]) Register(metadata Metadata, factory Factory[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToUpper(metadata.Name)
	if _, exists := r.entries[name]; exists {
		return errors.Errorf("indicator %q already registered", name)
	}

	if len(metadata.Defaults) != len(metadata.Parameters) {
		return errors.Errorf("indicator %q: %d parameters but %d defaults",
			name, len(metadata.Parameters), len(metadata.Defaults))
	}

	r.entries[name] = entry[T]{factory: factory, metadata: metadata}
	return nil
}

var labelPattern = regexp.MustCompile(`^\s*([A-Za-z_]+)\s*(?:\((.*)\))?\s*$`)

// Parse builds a runner from a label. "EMA(20)", "ema(20)" and "EMA" (the
// default window) are all accepted.
func (r *Registry[T]) Parse(label string) (Runner[T], error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return nil, errors.Wrapf(ErrMalformedLabel, "%q", label)
	}

	name := strings.ToUpper(m[1])

	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIndicator, "%q", name)
	}

	params := splitParams(m[2])
	if len(params) == 0 {
		params = e.metadata.Defaults
	}

	if len(params) != len(e.metadata.Parameters) {
		return nil, errors.Wrapf(ErrMalformedLabel, "%s expects %d parameters (%s), got %d",
			name, len(e.metadata.Parameters), strings.Join(e.metadata.Parameters, ", "), len(params))
	}

	runner, err := e.factory(r.ar, params)
	if err != nil {
		return nil, errors.Wrapf(err, "can not create %s", label)
	}

	return runner, nil
}

// ParseAll parses every label, stopping at the first error.
func (r *Registry[T]) ParseAll(labels []string) ([]Runner[T], error) {
	runners := make([]Runner[T], 0, len(labels))
	for _, label := range labels {
		runner, err := r.Parse(label)
		if err != nil {
			return nil, err
		}
		runners = append(runners, runner)
	}
	return runners, nil
}

// Metadata lists the registered indicators sorted by name.
func (r *Registry[T]) Metadata() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Metadata, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, e.metadata)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func splitParams(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseWindows(params []string) ([]int, error) {
	windows := make([]int, len(params))
	for i, p := range params {
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedLabel, "window %q is not an integer", p)
		}
		windows[i] = w
	}
	return windows, nil
}
