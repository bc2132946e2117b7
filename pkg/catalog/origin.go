package catalog

import (
	"fmt"
	"time"
)

// Origin is one location/time estimate for an event. It owns its arrival
// list and holds a non-owning view of the event magnitudes associated to
// it during linking.
type Origin struct {
	publicID  string
	time      time.Time
	latitude  float64
	longitude float64
	depth     float64

	distance *float64
	baz      *float64
	snr      *float64
	quality  string

	// Provenance: OriginSourceGUI, OriginSourceDL or empty. Not part of
	// the QuakeML data model.
	source string

	sstParameters *SingleStationParameters

	arrivals   []*Arrival
	magnitudes []*Magnitude

	// Non-owning back reference to the event holding this origin.
	parentEvent *Event
}

// NewOrigin creates an origin with its mandatory fields. Depth is in
// meters; callers building from a document without a depth element pass
// DefaultDepthMeters.
func NewOrigin(publicID string, t time.Time, latitude, longitude, depth float64) *Origin {
	return &Origin{
		publicID:  publicID,
		time:      t,
		latitude:  latitude,
		longitude: longitude,
		depth:     depth,
	}
}

func (o *Origin) PublicID() string   { return o.publicID }
func (o *Origin) Time() time.Time    { return o.time }
func (o *Origin) Latitude() float64  { return o.latitude }
func (o *Origin) Longitude() float64 { return o.longitude }
func (o *Origin) Depth() float64     { return o.depth }

func (o *Origin) SetDepth(v float64) { o.depth = v }

// Distance returns the epicentral distance in degrees. The second return
// value is false when neither the document nor the single-station
// extension carried one.
func (o *Origin) Distance() (float64, bool) { return optional(o.distance) }

// BAZ returns the back-azimuth in degrees.
func (o *Origin) BAZ() (float64, bool) { return optional(o.baz) }

// SNR returns the signal-to-noise ratio.
func (o *Origin) SNR() (float64, bool) { return optional(o.snr) }

func (o *Origin) SetDistance(v float64) { o.distance = &v }
func (o *Origin) SetBAZ(v float64)      { o.baz = &v }
func (o *Origin) SetSNR(v float64)      { o.snr = &v }

// Quality returns the location quality grade (A through D), or empty
// when the document carried none the translator recognized.
func (o *Origin) Quality() string     { return o.quality }
func (o *Origin) SetQuality(q string) { o.quality = q }

// Source returns the origin provenance tag, OriginSourceGUI or
// OriginSourceDL, or empty when unknown.
func (o *Origin) Source() string { return o.source }

func (o *Origin) SetAsGUIOrigin() { o.source = OriginSourceGUI }
func (o *Origin) SetAsDLOrigin()  { o.source = OriginSourceDL }

func (o *Origin) IsGUIOrigin() bool { return o.source == OriginSourceGUI }
func (o *Origin) IsDLOrigin() bool  { return o.source == OriginSourceDL }

// SingleStationParameters returns the attached extension record, or nil.
func (o *Origin) SingleStationParameters() *SingleStationParameters { return o.sstParameters }

// SetSingleStationParameters attaches a single-station extension record.
func (o *Origin) SetSingleStationParameters(sp *SingleStationParameters) error {
	if sp == nil {
		return fmt.Errorf("single-station parameters must not be nil: %w", ErrInvalidValue)
	}
	o.sstParameters = sp
	return nil
}

// DistancePDF is a shorthand for the distance sample arrays of the
// single-station extension. Returns nil arrays when no record is attached.
func (o *Origin) DistancePDF() (variable, pdf []float64) {
	if o.sstParameters == nil {
		return nil, nil
	}
	return o.sstParameters.DistancePDF()
}

// BAZPDF is a shorthand for the back-azimuth sample arrays of the
// single-station extension.
func (o *Origin) BAZPDF() (variable, pdf []float64) {
	if o.sstParameters == nil {
		return nil, nil
	}
	return o.sstParameters.BAZPDF()
}

// Arrivals returns the owned arrival list in document order.
func (o *Origin) Arrivals() []*Arrival { return o.arrivals }

// Arrival returns the first arrival with the given phase label, or nil.
func (o *Origin) Arrival(phaseLabel string) *Arrival {
	for _, a := range o.arrivals {
		if a.PhaseLabel() == phaseLabel {
			return a
		}
	}
	return nil
}

// AppendArrival adds an arrival to the origin.
func (o *Origin) AppendArrival(a *Arrival) error {
	if a == nil {
		return fmt.Errorf("arrival must not be nil: %w", ErrInvalidValue)
	}
	o.arrivals = append(o.arrivals, a)
	return nil
}

// SetArrivals replaces the arrival list wholesale.
func (o *Origin) SetArrivals(arrivals []*Arrival) { o.arrivals = arrivals }

// Magnitudes returns the magnitudes associated with this origin. The
// values are shared with the owning event's flat magnitude list.
func (o *Origin) Magnitudes() []*Magnitude { return o.magnitudes }

// AppendMagnitude associates an event magnitude with this origin.
func (o *Origin) AppendMagnitude(m *Magnitude) error {
	if m == nil {
		return fmt.Errorf("magnitude must not be nil: %w", ErrInvalidValue)
	}
	o.magnitudes = append(o.magnitudes, m)
	return nil
}

// ParentEvent returns the event owning this origin, or nil before linking.
func (o *Origin) ParentEvent() *Event { return o.parentEvent }

// SetParentEvent records the owning event. The reference is non-owning.
func (o *Origin) SetParentEvent(e *Event) error {
	if e == nil {
		return fmt.Errorf("parent event must not be nil: %w", ErrInvalidValue)
	}
	o.parentEvent = e
	return nil
}

func (o *Origin) String() string {
	s := fmt.Sprintf("Origin: %s, Quality: %s\n", o.publicID, o.quality)
	s += fmt.Sprintf("\t  O.Time: %s, Lat/Lon: %g, %g, Depth: %g\n",
		o.time.UTC().Format(time.RFC3339Nano), o.latitude, o.longitude, o.depth)
	d, b := "-", "-"
	if o.distance != nil {
		d = fmt.Sprintf("%g", *o.distance)
	}
	if o.baz != nil {
		b = fmt.Sprintf("%g", *o.baz)
	}
	s += fmt.Sprintf("\t  BED :: Dist: %s deg, Baz: %s deg", d, b)
	if o.sstParameters != nil {
		s += "\n\t  " + o.sstParameters.String()
	}
	return s
}
