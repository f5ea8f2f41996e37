// Package registry maps free-text country names found on pages to canonical
// country identities.
//
// Resolution is exact-first. When no canonical name matches, entries are
// scanned in their fixed order and the first one whose name contains the
// query, or is contained by it, wins. The result therefore depends on entry
// order: "Korea" resolves to whichever Korea-bearing entry comes first.
package registry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

var whitespace = regexp.MustCompile(`\s+`)

// Registry is an immutable, ordered set of country entries.
type Registry struct {
	entries []model.CountryRegistryEntry
	byName  map[string]int
	byCode  map[string]int
}

// New builds a registry from entries, keeping their order.
func New(entries []model.CountryRegistryEntry) (*Registry, error) {
	r := &Registry{
		entries: make([]model.CountryRegistryEntry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" || e.Code == "" || e.Page == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidEntry, e)
		}
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		r.byName[e.Name] = len(r.entries)
		// aliases share a code; the first entry owns it
		if _, seen := r.byCode[strings.ToUpper(e.Code)]; !seen {
			r.byCode[strings.ToUpper(e.Code)] = len(r.entries)
		}
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return r
}

// Normalize strips footnote asterisks and collapses whitespace.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "*", "")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Resolve maps a raw page name to a registry entry.
func (r *Registry) Resolve(raw string) (model.CountryRegistryEntry, bool) {
	name := Normalize(raw)
	if name == "" {
		return model.CountryRegistryEntry{}, false
	}
	if i, ok := r.byName[name]; ok {
		return r.entries[i], true
	}
	for _, e := range r.entries {
		if strings.Contains(e.Name, name) || strings.Contains(name, e.Name) {
			return e, true
		}
	}
	return model.CountryRegistryEntry{}, false
}

// ByCode looks an entry up by its committee code, ignoring case.
func (r *Registry) ByCode(code string) (model.CountryRegistryEntry, bool) {
	i, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return model.CountryRegistryEntry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of the entries in registry order.
func (r *Registry) Entries() []model.CountryRegistryEntry {
	out := make([]model.CountryRegistryEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of entries.
func (r *Registry) Len() int { return len(r.entries) }
