package header

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Element ids and classes of the header contract.
const (
	DefaultMountID     = "header-placeholder"
	HeaderID           = "app-header"
	UsernameID         = "header-username"
	MenuToggleID       = "menu-toggle"
	MenuID             = "navigation-menu"
	ResetPreferencesID = "common-reset-settings-btn"
	LogoutID           = "common-logout-btn"
	DailyID            = "common-daily-btn"
	HistoryID          = "common-history-btn"

	// OpenClass marks the menu and its toggle as expanded.
	OpenClass = "is-active"

	// MenuStateField carries the menu state of the page back with a toggle click.
	MenuStateField = "menu_open"
)

// Variant names.
const (
	Minimal  = "minimal"
	Extended = "extended"
)

// Entry is one item of the navigation list.
type Entry struct {
	ID            string `yaml:"id"`
	Label         string `yaml:"label"`
	Page          string `yaml:"page"`
	Class         string `yaml:"class"`
	AlwaysVisible bool   `yaml:"always_visible"`
	Separator     bool   `yaml:"separator"`
}

// IsLink reports whether the entry is a plain link to another page rather
// than a control with a click handler.
func (e Entry) IsLink() bool { return e.Page != "" }

// Variant is the navigation entry set of one page family.
type Variant struct {
	Name    string
	Entries []Entry
}

// Controls returns the entries that are not separators.
func (v Variant) Controls() []Entry {
	out := make([]Entry, 0, len(v.Entries))
	for _, e := range v.Entries {
		if !e.Separator {
			out = append(out, e)
		}
	}
	return out
}

func (v Variant) Has(id string) bool {
	for _, e := range v.Entries {
		if !e.Separator && e.ID == id {
			return true
		}
	}
	return false
}

//go:embed variants.yaml
var variantsYAML []byte

var builtinVariants = sync.OnceValue(func() map[string]Variant {
	variants, err := ParseVariants(variantsYAML)
	if err != nil {
		panic(fmt.Sprintf("header: embedded variants: %v", err))
	}
	return variants
})

// ParseVariants reads variant definitions keyed by variant name.
func ParseVariants(data []byte) (map[string]Variant, error) {
	var raw map[string][]Entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidVariants, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no variants", ErrInvalidVariants)
	}
	out := make(map[string]Variant, len(raw))
	for name, entries := range raw {
		seen := make(map[string]bool, len(entries))
		for i, e := range entries {
			if e.Separator {
				continue
			}
			if e.ID == "" || e.Label == "" {
				return nil, fmt.Errorf("%w: %s entry %d needs id and label", ErrInvalidVariants, name, i)
			}
			if seen[e.ID] {
				return nil, fmt.Errorf("%w: %s has duplicate id %q", ErrInvalidVariants, name, e.ID)
			}
			seen[e.ID] = true
		}
		out[name] = Variant{Name: name, Entries: entries}
	}
	return out, nil
}

// Builtin returns one of the embedded variants.
func Builtin(name string) (Variant, error) {
	v, ok := builtinVariants()[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	v.Entries = slices.Clone(v.Entries)
	return v, nil
}
