package catalog

import "fmt"

// SingleStationPick carries the single-station extension fields of a
// pick: a frequency measurement with asymmetric uncertainty bounds.
// All fields besides the identifier are optional.
type SingleStationPick struct {
	publicID             string
	frequency            *float64
	freqLowerUncertainty *float64
	freqUpperUncertainty *float64
}

// NewSingleStationPick creates an extension record with all optional
// fields unset.
func NewSingleStationPick(publicID string) *SingleStationPick {
	return &SingleStationPick{publicID: publicID}
}

func (sp *SingleStationPick) PublicID() string { return sp.publicID }

func (sp *SingleStationPick) Frequency() (float64, bool) { return optional(sp.frequency) }
func (sp *SingleStationPick) SetFrequency(v float64)     { sp.frequency = &v }

func (sp *SingleStationPick) FrequencyLowerUncertainty() (float64, bool) {
	return optional(sp.freqLowerUncertainty)
}

func (sp *SingleStationPick) FrequencyUpperUncertainty() (float64, bool) {
	return optional(sp.freqUpperUncertainty)
}

func (sp *SingleStationPick) SetFrequencyLowerUncertainty(v float64) { sp.freqLowerUncertainty = &v }
func (sp *SingleStationPick) SetFrequencyUpperUncertainty(v float64) { sp.freqUpperUncertainty = &v }

// SingleStationParameters carries the single-station extension fields of
// an origin: distance and back-azimuth point estimates plus paired
// (variable, probability) sample arrays for downstream uncertainty
// calculations. A record attaches to at most one origin.
type SingleStationParameters struct {
	publicID string

	distance *float64
	baz      *float64

	distanceVariable []float64
	distancePDF      []float64
	bazVariable      []float64
	bazPDF           []float64
}

// NewSingleStationParameters creates an extension record with all
// optional fields unset.
func NewSingleStationParameters(publicID string) *SingleStationParameters {
	return &SingleStationParameters{publicID: publicID}
}

func (sp *SingleStationParameters) PublicID() string { return sp.publicID }

func (sp *SingleStationParameters) Distance() (float64, bool) { return optional(sp.distance) }
func (sp *SingleStationParameters) BAZ() (float64, bool)      { return optional(sp.baz) }
func (sp *SingleStationParameters) SetDistance(v float64)     { sp.distance = &v }
func (sp *SingleStationParameters) SetBAZ(v float64)          { sp.baz = &v }

// DistancePDF returns the paired distance sample arrays: the variable
// axis and the probability density values. Either may be nil.
func (sp *SingleStationParameters) DistancePDF() (variable, pdf []float64) {
	return sp.distanceVariable, sp.distancePDF
}

// BAZPDF returns the paired back-azimuth sample arrays.
func (sp *SingleStationParameters) BAZPDF() (variable, pdf []float64) {
	return sp.bazVariable, sp.bazPDF
}

// SetDistancePDF stores the paired distance sample arrays. The arrays
// must have equal lengths.
func (sp *SingleStationParameters) SetDistancePDF(variable, pdf []float64) error {
	if len(variable) != len(pdf) {
		return fmt.Errorf("distance PDF arrays differ in length (%d vs %d): %w",
			len(variable), len(pdf), ErrInvalidValue)
	}
	sp.distanceVariable = variable
	sp.distancePDF = pdf
	return nil
}

// SetBAZPDF stores the paired back-azimuth sample arrays. The arrays
// must have equal lengths.
func (sp *SingleStationParameters) SetBAZPDF(variable, pdf []float64) error {
	if len(variable) != len(pdf) {
		return fmt.Errorf("back-azimuth PDF arrays differ in length (%d vs %d): %w",
			len(variable), len(pdf), ErrInvalidValue)
	}
	sp.bazVariable = variable
	sp.bazPDF = pdf
	return nil
}

func (sp *SingleStationParameters) String() string {
	d, b := "-", "-"
	if sp.distance != nil {
		d = fmt.Sprintf("%g", *sp.distance)
	}
	if sp.baz != nil {
		b = fmt.Sprintf("%g", *sp.baz)
	}
	return fmt.Sprintf("SST :: Dist: %s deg, Baz: %s deg", d, b)
}
