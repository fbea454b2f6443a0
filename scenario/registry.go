package scenario

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Runner runs one scenario against cfg.RegistryURL. Scenarios create their own clients and deadlines.
type Runner func(ctx context.Context, cfg *Config) error

// Scenario is a named end-to-end check.
type Scenario struct {
	Name        string
	Description string
	Run         Runner
}

var (
	mu        sync.RWMutex
	scenarios = make(map[string]Scenario)
)

// Register adds s. Call from init() in scenario files; a duplicate name panics.
func Register(s Scenario) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := scenarios[s.Name]; dup {
		panic("scenario: duplicate scenario " + s.Name)
	}
	scenarios[s.Name] = s
}

// All returns every registered scenario sorted by name.
func All() []Scenario {
	mu.RLock()
	out := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, s)
	}
	mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted scenario names.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Run runs the named scenario. An unregistered name yields *UnknownScenarioError.
func Run(ctx context.Context, name string, cfg *Config) error {
	mu.RLock()
	s, ok := scenarios[name]
	mu.RUnlock()
	if !ok {
		return &UnknownScenarioError{Name: name}
	}
	return s.Run(ctx, cfg)
}

// UnknownScenarioError is returned by Run for a name nobody registered.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario: %s", e.Name)
}
