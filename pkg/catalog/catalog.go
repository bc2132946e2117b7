package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the ordered container of all ingested events plus the
// provenance of the source document. It owns its events exclusively.
type Catalog struct {
	events []*Event
	source string
}

// New creates a catalog over the given events. The source identifies the
// document the events came from and may be empty for derived catalogs.
func New(events []*Event, source string) *Catalog {
	return &Catalog{events: events, source: source}
}

// Source returns the source-document identifier, or empty.
func (c *Catalog) Source() string          { return c.source }
func (c *Catalog) SetSource(source string) { c.source = source }

// Len returns the number of events.
func (c *Catalog) Len() int { return len(c.events) }

// Events returns the events in document order.
func (c *Catalog) Events() []*Event { return c.events }

// Append adds an event to the catalog.
func (c *Catalog) Append(e *Event) error {
	if e == nil {
		return fmt.Errorf("event must not be nil: %w", ErrInvalidValue)
	}
	c.events = append(c.events, e)
	return nil
}

// Extend appends a list of events to the catalog.
func (c *Catalog) Extend(events []*Event) error {
	for _, e := range events {
		if err := c.Append(e); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the first event equal (by name) to the given one.
// Removing an event not in the catalog is a no-op.
func (c *Catalog) Remove(e *Event) {
	for i, have := range c.events {
		if have == e || (e != nil && have.Name() == e.Name()) {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return
		}
	}
}

// Clear removes all events.
func (c *Catalog) Clear() { c.events = nil }

// Merge returns a new catalog holding the events of both catalogs, this
// one's first. The source identifier is not carried over.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	if other == nil {
		return New(append([]*Event(nil), c.events...), "")
	}
	merged := make([]*Event, 0, len(c.events)+len(other.events))
	merged = append(merged, c.events...)
	merged = append(merged, other.events...)
	return New(merged, "")
}

// EventByName returns the first event with the given name, or nil.
func (c *Catalog) EventByName(name string) *Event {
	for _, e := range c.events {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// EventsByName returns all events whose name appears in the given list,
// in catalog order.
func (c *Catalog) EventsByName(names ...string) []*Event {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var matched []*Event
	for _, e := range c.events {
		if want[e.Name()] {
			matched = append(matched, e)
		}
	}
	return matched
}

// Selection is a conjunction of optional filter criteria for Select.
// Zero-valued fields do not constrain the selection.
type Selection struct {
	// MarsTypes restricts to events whose Mars type code is in the set.
	MarsTypes []string

	// EarthTypes restricts to events whose base event type is in the set.
	EarthTypes []string

	// MinMagnitude / MaxMagnitude bound the resolved preferred magnitude.
	// Events without a resolved preferred magnitude never match a bound.
	MinMagnitude *float64
	MaxMagnitude *float64

	// Qualities restricts to events whose preferred-origin quality grade
	// is in the set. A leading "Q" is tolerated ("QA" means "A").
	Qualities []string
}

// Select returns a new catalog holding only the events matching every
// given criterion.
func (c *Catalog) Select(sel Selection) *Catalog {
	qualities := make([]string, len(sel.Qualities))
	for i, q := range sel.Qualities {
		qualities[i] = strings.TrimPrefix(q, "Q")
	}

	var selected []*Event
	for _, e := range c.events {
		if len(sel.MarsTypes) > 0 && !contains(sel.MarsTypes, e.MarsType()) {
			continue
		}
		if len(sel.EarthTypes) > 0 && !contains(sel.EarthTypes, e.EarthType()) {
			continue
		}
		if sel.MinMagnitude != nil {
			m := e.PreferredMagnitude()
			if m == nil || m.Value() < *sel.MinMagnitude {
				continue
			}
		}
		if sel.MaxMagnitude != nil {
			m := e.PreferredMagnitude()
			if m == nil || m.Value() > *sel.MaxMagnitude {
				continue
			}
		}
		if len(qualities) > 0 && !contains(qualities, e.Quality()) {
			continue
		}
		selected = append(selected, e)
	}
	return New(selected, "")
}

// SortByDistance returns event names ordered by the resolved preferred
// origin's epicentral distance, together with the distances. Events
// without a resolved preferred origin or without a distance are excluded.
func (c *Catalog) SortByDistance() (names []string, distances []float64) {
	type pair struct {
		name string
		dist float64
	}
	var pairs []pair
	for _, e := range c.events {
		o := e.PreferredOrigin()
		if o == nil {
			continue
		}
		if d, ok := o.Distance(); ok {
			pairs = append(pairs, pair{e.Name(), d})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	names = make([]string, len(pairs))
	distances = make([]float64, len(pairs))
	for i, p := range pairs {
		names[i] = p.name
		distances[i] = p.dist
	}
	return names, distances
}

// Breakdown counts events per Mars type per quality grade. Events with
// an unrecognized type or quality land under the empty key.
func (c *Catalog) Breakdown() map[string]map[string]int {
	breakdown := make(map[string]map[string]int)
	for _, e := range c.events {
		byQuality, ok := breakdown[e.MarsType()]
		if !ok {
			byQuality = make(map[string]int)
			breakdown[e.MarsType()] = byQuality
		}
		byQuality[e.Quality()]++
	}
	return breakdown
}

func (c *Catalog) String() string {
	source := c.source
	if source == "" {
		source = "unknown"
	}
	return fmt.Sprintf("Catalog: %s [%d events]", source, len(c.events))
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
