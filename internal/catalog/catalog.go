// Package catalog exposes the static definitions of available tabs and
// live events. The definitions are embedded at build time; persisted
// configuration references them by id and never redefines them.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"menuctl/internal/navigation"
)

//go:embed catalog.yaml
var catalogYAML []byte

// TabDef describes one entry of the "all available tabs" set.
type TabDef struct {
	ID     string              `yaml:"id"`
	Label  string              `yaml:"label"`
	Icon   string              `yaml:"icon"`
	Screen navigation.ScreenID `yaml:"screen"`
}

// EventDef describes one live-ops event available for placement.
type EventDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type catalog struct {
	Tabs               []TabDef   `yaml:"tabs"`
	DefaultTabs        []string   `yaml:"defaultTabs"`
	Events             []EventDef `yaml:"events"`
	DefaultLeftEvents  []string   `yaml:"defaultLeftEvents"`
	DefaultRightEvents []string   `yaml:"defaultRightEvents"`
}

var (
	once   sync.Once
	parsed catalog
)

func load() catalog {
	once.Do(func() {
		if err := yaml.Unmarshal(catalogYAML, &parsed); err != nil {
			// The catalog is compiled in; failing to parse it means the
			// build itself is broken.
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		for _, tab := range parsed.Tabs {
			if !tab.Screen.Known() {
				panic(fmt.Sprintf("catalog: tab %q references unknown screen %q", tab.ID, tab.Screen))
			}
		}
	})
	return parsed
}

// Tabs returns every available tab definition in catalog order.
func Tabs() []TabDef {
	c := load()
	out := make([]TabDef, len(c.Tabs))
	copy(out, c.Tabs)
	return out
}

// TabByID finds a tab definition by id.
func TabByID(id string) (TabDef, bool) {
	for _, t := range load().Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return TabDef{}, false
}

// DefaultTabIDs returns the ids enabled out of the box, in order.
func DefaultTabIDs() []string {
	c := load()
	out := make([]string, len(c.DefaultTabs))
	copy(out, c.DefaultTabs)
	return out
}

// Events returns every available event definition in catalog order.
func Events() []EventDef {
	c := load()
	out := make([]EventDef, len(c.Events))
	copy(out, c.Events)
	return out
}

// EventByID finds an event definition by id.
func EventByID(id string) (EventDef, bool) {
	for _, e := range load().Events {
		if e.ID == id {
			return e, true
		}
	}
	return EventDef{}, false
}

// DefaultPlacement returns the out-of-the-box left/right event ids.
func DefaultPlacement() (left, right []string) {
	c := load()
	left = make([]string, len(c.DefaultLeftEvents))
	copy(left, c.DefaultLeftEvents)
	right = make([]string, len(c.DefaultRightEvents))
	copy(right, c.DefaultRightEvents)
	return left, right
}
