// Package builtins adapts host-implemented functions to the object
// runtime's calling convention (object.HostFunc) and collects them in a
// lookup table, the way the teacher's internal/builtins package registers
// DWScript's RTL functions. Unlike that registry, lookups here are
// case-sensitive: chalk has no case-insensitive identifier rule to honor.
package builtins

import (
	"sync"

	"github.com/chalklang/chalk/internal/object"
)

// Value is an alias for the object runtime's value type, so callers of this
// package rarely need to import internal/object directly.
type Value = object.Value

// Category groups built-ins for documentation and introspection (a REPL's
// help command, for instance).
type Category string

const (
	CategoryIO         Category = "io"
	CategoryCollection Category = "collection"
)

// FunctionInfo describes one registered built-in.
type FunctionInfo struct {
	Name        string
	Function    object.HostFunc
	Category    Category
	Description string
}

// Registry is a concurrency-safe name -> built-in lookup table.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*FunctionInfo
	categories map[Category][]string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]*FunctionInfo),
		categories: make(map[Category][]string),
	}
}

// Register adds fn under name and category. A later call with the same name
// replaces the earlier registration.
func (r *Registry) Register(name string, fn object.HostFunc, category Category, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.functions[name]; ok {
		names := r.categories[old.Category]
		for i, n := range names {
			if n == name {
				r.categories[old.Category] = append(names[:i:i], names[i+1:]...)
				break
			}
		}
	}

	info := &FunctionInfo{Name: name, Function: fn, Category: category, Description: description}
	r.functions[name] = info
	r.categories[category] = append(r.categories[category], name)
}

// Lookup returns the host function registered under name, if any.
func (r *Registry) Lookup(name string) (object.HostFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return info.Function, true
}

// Get returns the full FunctionInfo registered under name, if any.
func (r *Registry) Get(name string) (*FunctionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.functions[name]
	return info, ok
}

// GetByCategory returns every FunctionInfo registered under category, in
// registration order.
func (r *Registry) GetByCategory(category Category) []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.categories[category]
	infos := make([]*FunctionInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, r.functions[name])
	}
	return infos
}

// AllFunctions returns every registered FunctionInfo in unspecified order.
func (r *Registry) AllFunctions() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]*FunctionInfo, 0, len(r.functions))
	for _, info := range r.functions {
		infos = append(infos, info)
	}
	return infos
}

// Count returns the number of registered built-ins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}
