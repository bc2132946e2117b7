package catalog

import (
	"fmt"
	"time"
)

// Pick is one detected-phase-arrival-time measurement at the event level.
type Pick struct {
	publicID         string
	time             time.Time
	phaseHint        string
	lowerUncertainty *float64
	upperUncertainty *float64

	// Single-station extension, attached during linking. Owned by the
	// pick; arrivals resolving to this pick share the same value.
	singleStation *SingleStationPick
}

// NewPick creates a pick with its mandatory fields.
func NewPick(publicID string, t time.Time, phaseHint string) *Pick {
	return &Pick{publicID: publicID, time: t, phaseHint: phaseHint}
}

func (p *Pick) PublicID() string  { return p.publicID }
func (p *Pick) Time() time.Time   { return p.time }
func (p *Pick) PhaseHint() string { return p.phaseHint }

// LowerUncertainty returns the lower time uncertainty in seconds.
// The second return value is false when the document carried none.
func (p *Pick) LowerUncertainty() (float64, bool) { return optional(p.lowerUncertainty) }

// UpperUncertainty returns the upper time uncertainty in seconds.
func (p *Pick) UpperUncertainty() (float64, bool) { return optional(p.upperUncertainty) }

func (p *Pick) SetLowerUncertainty(v float64) { p.lowerUncertainty = &v }
func (p *Pick) SetUpperUncertainty(v float64) { p.upperUncertainty = &v }

// SingleStationPick returns the attached extension record, or nil.
func (p *Pick) SingleStationPick() *SingleStationPick { return p.singleStation }

// SetSingleStationPick attaches a single-station extension record.
func (p *Pick) SetSingleStationPick(sp *SingleStationPick) error {
	if sp == nil {
		return fmt.Errorf("single-station pick must not be nil: %w", ErrInvalidValue)
	}
	p.singleStation = sp
	return nil
}

func (p *Pick) String() string {
	return fmt.Sprintf("Pick: %-18s Time: %s +/-%s", p.phaseHint,
		p.time.UTC().Format(time.RFC3339Nano), uncertaintyString(p.lowerUncertainty, p.upperUncertainty))
}

// Arrival associates a Pick with a specific Origin's phase interpretation.
// Its time and uncertainties stay unset until linking resolves the
// referenced pick; an unresolvable pick reference leaves them unset
// without being an error.
type Arrival struct {
	publicID         string
	pickID           string
	time             *time.Time
	phaseLabel       string
	lowerUncertainty *float64
	upperUncertainty *float64

	// Shared with the referenced pick, not owned.
	singleStation *SingleStationPick
}

// NewArrival creates an arrival referencing a pick by identifier.
// The time is populated by the linker, never at construction.
func NewArrival(publicID, pickID, phaseLabel string) *Arrival {
	return &Arrival{publicID: publicID, pickID: pickID, phaseLabel: phaseLabel}
}

func (a *Arrival) PublicID() string   { return a.publicID }
func (a *Arrival) PickID() string     { return a.pickID }
func (a *Arrival) PhaseLabel() string { return a.phaseLabel }

// Time returns the resolved pick time. The second return value is false
// when the pick reference did not resolve during linking.
func (a *Arrival) Time() (time.Time, bool) {
	if a.time == nil {
		return time.Time{}, false
	}
	return *a.time, true
}

func (a *Arrival) SetTime(t time.Time) { a.time = &t }

func (a *Arrival) LowerUncertainty() (float64, bool) { return optional(a.lowerUncertainty) }
func (a *Arrival) UpperUncertainty() (float64, bool) { return optional(a.upperUncertainty) }
func (a *Arrival) SetLowerUncertainty(v float64)     { a.lowerUncertainty = &v }
func (a *Arrival) SetUpperUncertainty(v float64)     { a.upperUncertainty = &v }
func (a *Arrival) ClearLowerUncertainty()            { a.lowerUncertainty = nil }
func (a *Arrival) ClearUpperUncertainty()            { a.upperUncertainty = nil }

// SingleStationPick returns the extension record shared with the
// referenced pick, or nil.
func (a *Arrival) SingleStationPick() *SingleStationPick { return a.singleStation }

// SetSingleStationPick shares an extension record with this arrival.
func (a *Arrival) SetSingleStationPick(sp *SingleStationPick) error {
	if sp == nil {
		return fmt.Errorf("single-station pick must not be nil: %w", ErrInvalidValue)
	}
	a.singleStation = sp
	return nil
}

// Frequency is a shorthand for the frequency measurement of the shared
// single-station pick.
func (a *Arrival) Frequency() (float64, bool) {
	if a.singleStation == nil {
		return 0, false
	}
	return a.singleStation.Frequency()
}

func (a *Arrival) String() string {
	t := "unresolved"
	if a.time != nil {
		t = a.time.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("Arrival: %-18s Time: %s +/-%s", a.phaseLabel, t,
		uncertaintyString(a.lowerUncertainty, a.upperUncertainty))
}

func optional(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func uncertaintyString(lower, upper *float64) string {
	l, u := "-", "-"
	if lower != nil {
		l = fmt.Sprintf("%g", *lower)
	}
	if upper != nil {
		u = fmt.Sprintf("%g", *upper)
	}
	return fmt.Sprintf("[%s, %s]", l, u)
}
