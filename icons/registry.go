// Package icons resolves named glyphs for components that draw iconography.
//
// A Registry holds named libraries; each library maps an icon name to the
// string drawn in the terminal. Components ask for an icon by library and name
// and never depend on how a library resolves it.
package icons

import (
	"slices"
	"sync"
)

const (
	DefaultLibrary = "default"
	ASCIILibrary   = "ascii"

	ChevronLeft  = "chevron-left"
	ChevronRight = "chevron-right"
	ChevronUp    = "chevron-up"
	ChevronDown  = "chevron-down"
	Close        = "x-lg"
)

// Resolver returns the glyph for name, or "" when the library lacks it.
type Resolver func(name string) string

type Library struct {
	Name    string
	Resolve Resolver
}

type Registry struct {
	mu        sync.RWMutex
	libraries []Library
}

// NewRegistry returns a registry preloaded with the default and ascii
// libraries.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(DefaultLibrary, mapResolver(map[string]string{
		ChevronLeft:  "‹",
		ChevronRight: "›",
		ChevronUp:    "▴",
		ChevronDown:  "▾",
		Close:        "×",
	}))
	r.Register(ASCIILibrary, mapResolver(map[string]string{
		ChevronLeft:  "<",
		ChevronRight: ">",
		ChevronUp:    "^",
		ChevronDown:  "v",
		Close:        "x",
	}))
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default is the process-wide registry used when a component is not given
// one explicitly.
func Default() *Registry {
	defaultOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// Register adds a library or replaces the one with the same name.
func (r *Registry) Register(name string, resolve Resolver) {
	if resolve == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.libraries = slices.DeleteFunc(r.libraries, func(l Library) bool { return l.Name == name })
	r.libraries = append(r.libraries, Library{Name: name, Resolve: resolve})
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.libraries = slices.DeleteFunc(r.libraries, func(l Library) bool { return l.Name == name })
}

func (r *Registry) Library(name string) (Library, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.libraries {
		if l.Name == name {
			return l, true
		}
	}
	return Library{}, false
}

// Glyph resolves name in library, falling back to the default library and
// finally to fallback.
func (r *Registry) Glyph(library, name, fallback string) string {
	if l, ok := r.Library(library); ok {
		if g := l.Resolve(name); g != "" {
			return g
		}
	}
	if library != DefaultLibrary {
		if l, ok := r.Library(DefaultLibrary); ok {
			if g := l.Resolve(name); g != "" {
				return g
			}
		}
	}
	return fallback
}

func mapResolver(glyphs map[string]string) Resolver {
	return func(name string) string { return glyphs[name] }
}
