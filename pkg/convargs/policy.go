package convargs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExtensionPolicy holds the ordered lists of accepted file extensions for the
// source and target roles. Entries are lowercase without a leading dot; the
// first entry of each list is the default extension for that role. When
// RequireDisjoint is set, the two lists must not share any extension; this is
// a caller-configurable policy, off by default.
type ExtensionPolicy struct {
	Source          []string
	Target          []string
	RequireDisjoint bool
}

// NewExtensionPolicy normalizes the given extension lists (lowercased,
// leading dots stripped) and validates them. Violations wrap
// ErrConfigValidation.
func NewExtensionPolicy(source, target []string) (ExtensionPolicy, error) {
	p := ExtensionPolicy{
		Source: normalizeExts(source),
		Target: normalizeExts(target),
	}
	if err := p.validate(); err != nil {
		return ExtensionPolicy{}, err
	}
	return p, nil
}

func (p ExtensionPolicy) validate() error {
	if len(p.Source) == 0 {
		return fmt.Errorf("%w: source extension list is empty", ErrConfigValidation)
	}
	if len(p.Target) == 0 {
		return fmt.Errorf("%w: target extension list is empty", ErrConfigValidation)
	}
	for _, ext := range append(append([]string(nil), p.Source...), p.Target...) {
		if ext == "" {
			return fmt.Errorf("%w: empty extension entry", ErrConfigValidation)
		}
	}
	if p.RequireDisjoint {
		seen := make(map[string]struct{}, len(p.Source))
		for _, ext := range p.Source {
			seen[ext] = struct{}{}
		}
		for _, ext := range p.Target {
			if _, ok := seen[ext]; ok {
				return fmt.Errorf("%w: extension %q appears in both source and target lists", ErrConfigValidation, ext)
			}
		}
	}
	return nil
}

// DefaultTarget returns the default target extension, the first entry of the
// target list.
func (p ExtensionPolicy) DefaultTarget() string {
	if len(p.Target) == 0 {
		return ""
	}
	return normalizeExt(p.Target[0])
}

// AllowsSource reports whether ext is an accepted source extension. The
// comparison is case-insensitive.
func (p ExtensionPolicy) AllowsSource(ext string) bool {
	return containsExt(p.Source, ext)
}

// AllowsTarget reports whether ext is an accepted target extension. The
// comparison is case-insensitive.
func (p ExtensionPolicy) AllowsTarget(ext string) bool {
	return containsExt(p.Target, ext)
}

func containsExt(list []string, ext string) bool {
	ext = normalizeExt(ext)
	for _, e := range list {
		if normalizeExt(e) == ext {
			return true
		}
	}
	return false
}

func normalizeExts(list []string) []string {
	out := make([]string, len(list))
	for i, ext := range list {
		out[i] = normalizeExt(ext)
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// pathExt returns the extension of path, lowercased and without the leading
// dot. A path with no extension returns the empty string.
func pathExt(path string) string {
	return normalizeExt(filepath.Ext(path))
}

// replaceExt swaps the extension of path for ext (given without a dot).
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
