package convargs

import (
	"fmt"
	"strings"
)

// Flag declares a named boolean switch. Name is the identifier matched
// against flag tokens (without leading dashes), Usage is the line shown in
// generated help text, and Default is the state the flag is reset to at the
// start of every parse.
type Flag struct {
	Name    string
	Usage   string
	Default bool
}

// Registry holds the fixed, ordered set of flags a Parser recognizes plus
// their current enabled state. The flag set is fixed for the lifetime of the
// registry; only the enabled state of each member changes, and only during a
// parse. A Registry is not safe for concurrent parses; callers running
// parses from multiple goroutines must serialize them.
type Registry struct {
	flags   []Flag
	enabled map[string]bool
}

// NewRegistry builds a Registry from the declared flags and validates it:
// names must be unique, non-empty, and free of leading dashes, the set must
// contain FlagHelp and FlagVersion, and at least MinRegistryFlags flags must
// be declared. Violations wrap ErrConfigValidation.
func NewRegistry(flags ...Flag) (*Registry, error) {
	r := &Registry{
		flags:   append([]Flag(nil), flags...),
		enabled: make(map[string]bool, len(flags)),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.Reset()
	return r, nil
}

func (r *Registry) validate() error {
	if len(r.flags) < MinRegistryFlags {
		return fmt.Errorf("%w: registry needs at least %d flags, got %d",
			ErrConfigValidation, MinRegistryFlags, len(r.flags))
	}
	names := make(map[string]struct{}, len(r.flags))
	for _, f := range r.flags {
		if f.Name == "" {
			return fmt.Errorf("%w: flag with empty name", ErrConfigValidation)
		}
		if strings.HasPrefix(f.Name, "-") {
			return fmt.Errorf("%w: flag name %q must not start with a dash", ErrConfigValidation, f.Name)
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("%w: duplicate flag name %q", ErrConfigValidation, f.Name)
		}
		names[f.Name] = struct{}{}
	}
	for _, required := range []string{FlagHelp, FlagVersion} {
		if _, ok := names[required]; !ok {
			return fmt.Errorf("%w: registry must contain a %q flag", ErrConfigValidation, required)
		}
	}
	return nil
}

// Reset restores every flag to its declared default state. Parse calls this
// at the start of every invocation.
func (r *Registry) Reset() {
	for _, f := range r.flags {
		r.enabled[f.Name] = f.Default
	}
}

// Enabled reports the current state of the named flag. Unregistered names
// report false.
func (r *Registry) Enabled(name string) bool {
	return r.enabled[name]
}

// Flags returns a copy of the declared flags in registration order.
func (r *Registry) Flags() []Flag {
	return append([]Flag(nil), r.flags...)
}

// set enables the named flag, reporting whether the name is registered.
func (r *Registry) set(name string) bool {
	if _, ok := r.enabled[name]; !ok {
		return false
	}
	r.enabled[name] = true
	return true
}

// snapshot copies the current flag states into a fresh map for a Result.
func (r *Registry) snapshot() map[string]bool {
	states := make(map[string]bool, len(r.enabled))
	for name, on := range r.enabled {
		states[name] = on
	}
	return states
}
