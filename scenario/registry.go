package scenario

import (
	"embed"
	"fmt"
	"path"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/oerror"
)

//go:embed builtin/*.yaml
var builtinFiles embed.FS

// Registry holds scenarios by name, in the order they were registered.
type Registry struct {
	scenarios *orderedmap.OrderedMap[string, *Scenario]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{scenarios: orderedmap.NewOrderedMap[string, *Scenario]()}
}

// Builtin returns a registry holding the scenarios shipped with hopsim.
func Builtin() (*Registry, error) {
	entries, err := builtinFiles.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("error reading built-in scenarios: %w", err)
	}
	r := NewRegistry()
	for _, e := range entries {
		data, err := builtinFiles.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("error reading built-in scenario %s: %w", e.Name(), err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("built-in scenario %s: %w", e.Name(), err)
		}
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s to the registry. Names must be unique.
func (r *Registry) Register(s *Scenario) error {
	if _, ok := r.scenarios.Get(s.Name); ok {
		return oerror.New(game.ErrorInvalidScenario, s.Name, "already registered")
	}
	r.scenarios.Set(s.Name, s)
	return nil
}

// Get returns the scenario registered under name.
func (r *Registry) Get(name string) (*Scenario, error) {
	s, ok := r.scenarios.Get(name)
	if !ok {
		return nil, oerror.New(game.ErrorUnknownScenario, name)
	}
	return s, nil
}

// Names returns the names of all scenarios in registration order.
func (r *Registry) Names() []string {
	return r.scenarios.Keys()
}

// All returns all scenarios in registration order.
func (r *Registry) All() []*Scenario {
	all := make([]*Scenario, 0, r.scenarios.Len())
	for el := r.scenarios.Front(); el != nil; el = el.Next() {
		all = append(all, el.Value)
	}
	return all
}

func (r *Registry) Len() int {
	return r.scenarios.Len()
}
