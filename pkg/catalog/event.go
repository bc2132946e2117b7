package catalog

import (
	"fmt"
	"strings"
)

// preferredRef is a resolve-once cache for a preferred-entity lookup.
// "Not yet resolved" and "resolved to nothing" are distinct states
// internally; both present as nil to callers.
type preferredRef[T any] struct {
	resolved bool
	value    *T
}

func (r *preferredRef[T]) set(v *T) {
	r.value = v
	r.resolved = true
}

func (r *preferredRef[T]) reset() {
	r.value = nil
	r.resolved = false
}

// Event is one seismic occurrence: an ordered set of origins, a flat
// event-level magnitude list, and the picks the origins' arrivals
// reference.
type Event struct {
	publicID string

	// name is empty for auto-detected events that never received one.
	name string

	marsType       string
	earthType      string
	interpretation string

	origins    []*Origin
	magnitudes []*Magnitude
	picks      []*Pick

	preferredOriginID    string
	preferredMagnitudeID string

	preferredOrigin    preferredRef[Origin]
	preferredMagnitude preferredRef[Magnitude]
}

// NewEvent creates an event with its identifier and display name.
func NewEvent(publicID, name string) *Event {
	return &Event{publicID: publicID, name: name}
}

func (e *Event) PublicID() string { return e.publicID }

// Name returns the human-readable event name (e.g. "S1222a"), or empty
// for auto-detected events without one.
func (e *Event) Name() string        { return e.name }
func (e *Event) SetName(name string) { e.name = name }

// MarsType returns the short Mars event type code (e.g. "BB", "DL-HF"),
// or empty when the document code was unrecognized.
func (e *Event) MarsType() string     { return e.marsType }
func (e *Event) SetMarsType(t string) { e.marsType = t }

// EarthType returns the base QuakeML event type (e.g. "meteorite").
func (e *Event) EarthType() string     { return e.earthType }
func (e *Event) SetEarthType(t string) { e.earthType = t }

// Interpretation returns the event type interpretation label (swarm,
// impact, tectonic, unknown), or empty when unrecognized.
func (e *Event) Interpretation() string     { return e.interpretation }
func (e *Event) SetInterpretation(v string) { e.interpretation = v }

// IsMeteoriteImpact reports whether the base event type marks a
// meteorite impact.
func (e *Event) IsMeteoriteImpact() bool { return e.earthType == "meteorite" }

// IsThermalEvent reports whether the event is an auto-processed thermal
// event (T-prefixed names).
func (e *Event) IsThermalEvent() bool { return strings.HasPrefix(e.name, "T") }

// IsDeepLearningEvent reports whether the event was created by the
// deep-learning analysis (D-prefixed names).
func (e *Event) IsDeepLearningEvent() bool { return strings.HasPrefix(e.name, "D") }

// Origins returns the owned origin list in document order.
func (e *Event) Origins() []*Origin { return e.origins }

// SetOrigins replaces the origin list wholesale and invalidates the
// preferred-origin cache.
func (e *Event) SetOrigins(origins []*Origin) {
	e.origins = origins
	e.preferredOrigin.reset()
}

// AppendOrigin adds an origin to the event.
func (e *Event) AppendOrigin(o *Origin) error {
	if o == nil {
		return fmt.Errorf("origin must not be nil: %w", ErrInvalidValue)
	}
	e.origins = append(e.origins, o)
	return nil
}

// Magnitudes returns the flat event-level magnitude list. The event owns
// the canonical values; origins hold shared references to them.
func (e *Event) Magnitudes() []*Magnitude { return e.magnitudes }

// SetMagnitudes replaces the magnitude list wholesale and invalidates
// the preferred-magnitude cache.
func (e *Event) SetMagnitudes(magnitudes []*Magnitude) {
	e.magnitudes = magnitudes
	e.preferredMagnitude.reset()
}

// AppendMagnitude adds a magnitude to the flat event-level list.
func (e *Event) AppendMagnitude(m *Magnitude) error {
	if m == nil {
		return fmt.Errorf("magnitude must not be nil: %w", ErrInvalidValue)
	}
	e.magnitudes = append(e.magnitudes, m)
	return nil
}

// Magnitude returns the first magnitude of the given type, or nil.
func (e *Event) Magnitude(magnitudeType string) *Magnitude {
	for _, m := range e.magnitudes {
		if m.Type() == magnitudeType {
			return m
		}
	}
	return nil
}

// Picks returns the event-level pick list in document order.
func (e *Event) Picks() []*Pick { return e.picks }

// SetPicks replaces the pick list wholesale.
func (e *Event) SetPicks(picks []*Pick) { e.picks = picks }

// AppendPick adds a pick to the event.
func (e *Event) AppendPick(p *Pick) error {
	if p == nil {
		return fmt.Errorf("pick must not be nil: %w", ErrInvalidValue)
	}
	e.picks = append(e.picks, p)
	return nil
}

// Pick returns the first pick with the given phase hint, or nil.
func (e *Event) Pick(phaseHint string) *Pick {
	for _, p := range e.picks {
		if p.PhaseHint() == phaseHint {
			return p
		}
	}
	return nil
}

// PickForArrival returns the pick whose identifier matches the arrival's
// pick reference, or nil when the reference does not resolve.
func (e *Event) PickForArrival(a *Arrival) *Pick {
	for _, p := range e.picks {
		if p.PublicID() == a.PickID() {
			return p
		}
	}
	return nil
}

// PreferredOriginID returns the analyst-designated preferred origin
// reference, or empty.
func (e *Event) PreferredOriginID() string { return e.preferredOriginID }

// SetPreferredOriginID records the preferred-origin reference and
// invalidates the resolved cache.
func (e *Event) SetPreferredOriginID(id string) {
	e.preferredOriginID = id
	e.preferredOrigin.reset()
}

// PreferredMagnitudeID returns the preferred magnitude reference, or empty.
func (e *Event) PreferredMagnitudeID() string { return e.preferredMagnitudeID }

// SetPreferredMagnitudeID records the preferred-magnitude reference and
// invalidates the resolved cache.
func (e *Event) SetPreferredMagnitudeID(id string) {
	e.preferredMagnitudeID = id
	e.preferredMagnitude.reset()
}

// PreferredOrigin returns the origin whose identifier equals the
// preferred-origin reference. The lookup runs once and is cached; a
// reference that resolves to nothing yields nil, not an error.
func (e *Event) PreferredOrigin() *Origin {
	if !e.preferredOrigin.resolved {
		var match *Origin
		for _, o := range e.origins {
			if o.PublicID() == e.preferredOriginID {
				match = o
				break
			}
		}
		e.preferredOrigin.set(match)
	}
	return e.preferredOrigin.value
}

// PreferredMagnitude returns the magnitude whose identifier equals the
// preferred-magnitude reference, resolved once and cached.
func (e *Event) PreferredMagnitude() *Magnitude {
	if !e.preferredMagnitude.resolved {
		var match *Magnitude
		for _, m := range e.magnitudes {
			if m.PublicID() == e.preferredMagnitudeID {
				match = m
				break
			}
		}
		e.preferredMagnitude.set(match)
	}
	return e.preferredMagnitude.value
}

// SetPreferredOrigin overrides the resolved preferred origin.
func (e *Event) SetPreferredOrigin(o *Origin) error {
	if o == nil {
		return fmt.Errorf("origin must not be nil: %w", ErrInvalidValue)
	}
	e.preferredOrigin.set(o)
	return nil
}

// SetPreferredMagnitude overrides the resolved preferred magnitude.
func (e *Event) SetPreferredMagnitude(m *Magnitude) error {
	if m == nil {
		return fmt.Errorf("magnitude must not be nil: %w", ErrInvalidValue)
	}
	e.preferredMagnitude.set(m)
	return nil
}

// Quality is a shorthand for the location quality of the preferred
// origin. Empty when no preferred origin resolves.
func (e *Event) Quality() string {
	if o := e.PreferredOrigin(); o != nil {
		return o.Quality()
	}
	return ""
}

func (e *Event) String() string {
	return fmt.Sprintf("%-8s%-8s%s", e.name, e.marsType+", Q"+e.Quality(), e.publicID)
}
