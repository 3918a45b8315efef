package lint

import (
	"fmt"
	"sync"

	"github.com/yaklabco/mdprose/pkg/config"
)

// Factory builds a fresh check instance.
// Checks carry per-scan state, so every document gets its own instances.
type Factory func(env Env) (Check, error)

// Definition describes a check and how to construct it.
type Definition struct {
	ID              string
	Name            string
	Title           string
	Description     string
	DefaultSeverity config.Severity

	// Options holds the default option values, used for documentation and templates.
	Options map[string]any

	// ValidateOptions rejects bad option values when configuration is
	// loaded, before any document is read. Nil accepts anything.
	ValidateOptions func(options map[string]any) error

	New Factory
}

// Registry holds check definitions in declaration order.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]Definition
	byName map[string]string // name -> ID
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Definition),
		byName: make(map[string]string),
	}
}

// Register adds a definition to the registry.
// Registering an ID twice replaces the definition but keeps its position.
func (r *Registry) Register(def Definition) error {
	if def.ID == "" || def.New == nil {
		return fmt.Errorf("invalid check definition %q", def.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[def.ID]; ok {
		delete(r.byName, existing.Name)
	} else {
		r.order = append(r.order, def.ID)
	}
	r.byID[def.ID] = def
	if def.Name != "" {
		r.byName[def.Name] = def.ID
	}
	return nil
}

// Get retrieves a definition by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if def, ok := r.byID[key]; ok {
		return def, true
	}
	if id, ok := r.byName[key]; ok {
		return r.byID[id], true
	}
	return Definition{}, false
}

// Resolve returns the canonical ID for a check ID or name.
func (r *Registry) Resolve(key string) (string, bool) {
	def, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return def.ID, true
}

// Definitions returns all definitions in declaration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// IDs returns all registered check IDs in declaration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
