package catalog

import (
	"fmt"
	"time"
)

// Magnitude is one size estimate tied to a specific origin. The event
// owns the canonical magnitude list; the origin referenced by OriginID
// holds the same value after linking.
type Magnitude struct {
	publicID         string
	originID         string
	magnitudeType    string
	value            float64
	lowerUncertainty *float64
	upperUncertainty *float64

	// calculated marks magnitudes computed at runtime rather than read
	// from the catalog document.
	calculated bool
}

// NewMagnitude creates a magnitude with its mandatory fields.
func NewMagnitude(publicID, originID, magnitudeType string, value float64) *Magnitude {
	return &Magnitude{
		publicID:      publicID,
		originID:      originID,
		magnitudeType: magnitudeType,
		value:         value,
	}
}

// NewCalculatedMagnitude creates a magnitude computed at runtime rather
// than read from a document. It receives a generated identifier in the
// mission scheme and is marked as calculated.
func NewCalculatedMagnitude(originID, magnitudeType string, value float64) *Magnitude {
	m := NewMagnitude(NewPublicID("Magnitude", time.Now()), originID, magnitudeType, value)
	m.calculated = true
	return m
}

func (m *Magnitude) PublicID() string { return m.publicID }
func (m *Magnitude) OriginID() string { return m.originID }
func (m *Magnitude) Type() string     { return m.magnitudeType }
func (m *Magnitude) Value() float64   { return m.value }

func (m *Magnitude) SetValue(v float64)    { m.value = v }
func (m *Magnitude) SetOriginID(id string) { m.originID = id }

func (m *Magnitude) LowerUncertainty() (float64, bool) { return optional(m.lowerUncertainty) }
func (m *Magnitude) UpperUncertainty() (float64, bool) { return optional(m.upperUncertainty) }
func (m *Magnitude) SetLowerUncertainty(v float64)     { m.lowerUncertainty = &v }
func (m *Magnitude) SetUpperUncertainty(v float64)     { m.upperUncertainty = &v }

// IsCalculated reports whether the magnitude was computed at runtime
// instead of read from the catalog document.
func (m *Magnitude) IsCalculated() bool     { return m.calculated }
func (m *Magnitude) SetCalculated(v bool)   { m.calculated = v }

func (m *Magnitude) String() string {
	return fmt.Sprintf("Magnitude: %s: %g", m.magnitudeType, m.value)
}
