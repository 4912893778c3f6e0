// Package stories holds visual-test stories: small, named renderings of each
// component in its variants, served by the story server and the CLI.
package stories

import (
	"errors"
	"fmt"
	"sync"

	"github.com/a-h/templ"
)

// ErrStoryNotFound is returned by Get for an unknown group/name pair.
var ErrStoryNotFound = errors.New("story not found")

// Story is one rendering of a component.
type Story struct {
	Group       string
	Name        string
	Description string
	Render      func() templ.Component
}

// ID returns "group/name".
func (s Story) ID() string { return s.Group + "/" + s.Name }

// Path returns the story server route for s.
func (s Story) Path() string { return "/stories/" + s.ID() }

// Registry keeps stories in registration order. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	stories []Story
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a story. Group and name must be slugs, the render function is
// required and group/name pairs must be unique.
func (r *Registry) Register(s Story) error {
	if err := validateSlug(s.Group); err != nil {
		return fmt.Errorf("story %q: group %w", s.ID(), err)
	}
	if err := validateSlug(s.Name); err != nil {
		return fmt.Errorf("story %q: name %w", s.ID(), err)
	}
	if s.Render == nil {
		return fmt.Errorf("story %s: render function is required", s.ID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[s.ID()]; exists {
		return fmt.Errorf("story %s already registered", s.ID())
	}
	r.index[s.ID()] = len(r.stories)
	r.stories = append(r.stories, s)
	return nil
}

// MustRegister is Register for package-level setup; it panics on error.
func (r *Registry) MustRegister(stories ...Story) {
	for _, s := range stories {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Get(group, name string) (Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[group+"/"+name]
	if !ok {
		return Story{}, fmt.Errorf("%w: %s/%s", ErrStoryNotFound, group, name)
	}
	return r.stories[i], nil
}

// All returns every story in registration order.
func (r *Registry) All() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Story(nil), r.stories...)
}

// Groups returns group names in order of first registration.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var groups []string
	for _, s := range r.stories {
		if !seen[s.Group] {
			seen[s.Group] = true
			groups = append(groups, s.Group)
		}
	}
	return groups
}

// InGroup returns the stories of one group in registration order.
func (r *Registry) InGroup(group string) []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Story
	for _, s := range r.stories {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry holding the built-in component stories.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.MustRegister(builtin()...)
	})
	return defaultRegistry
}
