package quakeml

import (
	"errors"
	"testing"
	"time"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

// buildNode decodes a fragment and returns the first element under the
// synthetic document node.
func buildNode(t *testing.T, fragment string) *Node {
	t.Helper()
	root, err := decode([]byte(fragment), "fragment.xml")
	if err != nil {
		t.Fatalf("Expected no decode error, got: %v", err)
	}
	for _, key := range root.childKeys {
		return root.Child(key)
	}
	t.Fatal("Expected a root element in fragment")
	return nil
}

// TestBuildOrigin_AllFields tests origin construction with the full
// field set including the mars extension fields.
func TestBuildOrigin_AllFields(t *testing.T) {
	node := buildNode(t, `<origin publicID="smi:test/origin/1"
    xmlns:mars="http://quakeml.org/xmlns/bed-rt/mars/1.0">
  <time><value>2019-05-23T02:22:59.000000Z</value></time>
  <latitude><value>11.28</value></latitude>
  <longitude><value>163.18</value></longitude>
  <depth><value>35000</value></depth>
  <mars:locationQuality>smi:insight.mqs/marsquake/locationquality/MarsLocationQualityType#A</mars:locationQuality>
  <mars:distance><mars:value>26.4</mars:value></mars:distance>
  <mars:BAZ><mars:value>74.0</mars:value></mars:BAZ>
  <mars:snr snrMQS="91.5"/>
</origin>`)

	b := &builder{source: "fragment.xml"}
	origin, err := b.origin(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if origin.PublicID() != "smi:test/origin/1" {
		t.Errorf("Expected publicID smi:test/origin/1, got %q", origin.PublicID())
	}
	want := time.Date(2019, 5, 23, 2, 22, 59, 0, time.UTC)
	if !origin.Time().Equal(want) {
		t.Errorf("Expected time %v, got %v", want, origin.Time())
	}
	if origin.Latitude() != 11.28 || origin.Longitude() != 163.18 {
		t.Errorf("Expected coordinates (11.28, 163.18), got (%g, %g)", origin.Latitude(), origin.Longitude())
	}
	if origin.Depth() != 35000 {
		t.Errorf("Expected depth 35000, got %g", origin.Depth())
	}
	if origin.Quality() != "A" {
		t.Errorf("Expected quality A, got %q", origin.Quality())
	}
	if d, ok := origin.Distance(); !ok || d != 26.4 {
		t.Errorf("Expected distance 26.4, got %g (present=%v)", d, ok)
	}
	if baz, ok := origin.BAZ(); !ok || baz != 74.0 {
		t.Errorf("Expected BAZ 74.0, got %g (present=%v)", baz, ok)
	}
	if snr, ok := origin.SNR(); !ok || snr != 91.5 {
		t.Errorf("Expected SNR 91.5, got %g (present=%v)", snr, ok)
	}
}

// TestBuildOrigin_DepthDefault tests that a missing depth element yields
// the 50 km default.
func TestBuildOrigin_DepthDefault(t *testing.T) {
	node := buildNode(t, `<origin publicID="smi:test/origin/2">
  <time><value>2019-01-01T00:00:00Z</value></time>
  <latitude><value>4.5</value></latitude>
  <longitude><value>135.6</value></longitude>
</origin>`)

	b := &builder{source: "fragment.xml"}
	origin, err := b.origin(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if origin.Depth() != catalog.DefaultDepthMeters {
		t.Errorf("Expected default depth %g, got %g", catalog.DefaultDepthMeters, origin.Depth())
	}
	if _, ok := origin.Distance(); ok {
		t.Error("Expected distance to be unset")
	}
	if origin.Quality() != "" {
		t.Errorf("Expected empty quality, got %q", origin.Quality())
	}
}

// TestBuildOrigin_MissingTime tests that an origin without a timestamp
// is rejected.
func TestBuildOrigin_MissingTime(t *testing.T) {
	node := buildNode(t, `<origin publicID="smi:test/origin/3">
  <latitude><value>4.5</value></latitude>
  <longitude><value>135.6</value></longitude>
</origin>`)

	b := &builder{source: "fragment.xml"}
	_, err := b.origin(node)
	if err == nil {
		t.Fatal("Expected error for origin without time")
	}
	if !errors.Is(err, catalog.ErrParse) {
		t.Errorf("Expected parse error classification, got: %v", err)
	}
}

// TestBuildMagnitude_WithoutValue tests that a magnitude node lacking a
// numeric value resolves to nil without error.
func TestBuildMagnitude_WithoutValue(t *testing.T) {
	node := buildNode(t, `<magnitude publicID="smi:test/magnitude/1">
  <type>MW</type>
  <originID>smi:test/origin/1</originID>
</magnitude>`)

	b := &builder{source: "fragment.xml"}
	mag, err := b.magnitude(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if mag != nil {
		t.Errorf("Expected nil magnitude, got %v", mag)
	}
}

// TestBuildMagnitude_AllFields tests magnitude construction with
// uncertainty bounds.
func TestBuildMagnitude_AllFields(t *testing.T) {
	node := buildNode(t, `<magnitude publicID="smi:test/magnitude/2">
  <type>mb_P</type>
  <originID>smi:test/origin/1</originID>
  <mag>
    <value>3.1</value>
    <lowerUncertainty>0.2</lowerUncertainty>
    <upperUncertainty>0.3</upperUncertainty>
  </mag>
</magnitude>`)

	b := &builder{source: "fragment.xml"}
	mag, err := b.magnitude(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if mag == nil {
		t.Fatal("Expected magnitude, got nil")
	}

	if mag.Type() != "mb_P" {
		t.Errorf("Expected type mb_P, got %q", mag.Type())
	}
	if mag.OriginID() != "smi:test/origin/1" {
		t.Errorf("Expected origin reference, got %q", mag.OriginID())
	}
	if mag.Value() != 3.1 {
		t.Errorf("Expected value 3.1, got %g", mag.Value())
	}
	if v, ok := mag.LowerUncertainty(); !ok || v != 0.2 {
		t.Errorf("Expected lower uncertainty 0.2, got %g (present=%v)", v, ok)
	}
	if v, ok := mag.UpperUncertainty(); !ok || v != 0.3 {
		t.Errorf("Expected upper uncertainty 0.3, got %g (present=%v)", v, ok)
	}
	if mag.IsCalculated() {
		t.Error("Expected document magnitude to not be marked calculated")
	}
}

// TestBuildEvent_NameFromDescription tests name extraction from the
// description records.
func TestBuildEvent_NameFromDescription(t *testing.T) {
	node := buildNode(t, `<event publicID="smi:test/event/1"
    xmlns:mars="http://quakeml.org/xmlns/bed-rt/mars/1.0">
  <description>
    <type>region name</type>
    <text>Elysium Planitia</text>
  </description>
  <description>
    <type>earthquake name</type>
    <text>S0235b</text>
  </description>
  <mars:type>smi:insight.mqs/marsquake/eventtype/MarsEventType#LOW_FREQUENCY</mars:type>
  <type>earthquake</type>
  <preferredOriginID>smi:test/origin/1</preferredOriginID>
  <preferredMagnitudeID>smi:test/magnitude/1</preferredMagnitudeID>
</event>`)

	b := &builder{source: "fragment.xml"}
	ev, err := b.event(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if ev.Name() != "S0235b" {
		t.Errorf("Expected name S0235b, got %q", ev.Name())
	}
	if ev.MarsType() != "LF" {
		t.Errorf("Expected mars type LF, got %q", ev.MarsType())
	}
	if ev.EarthType() != "earthquake" {
		t.Errorf("Expected earth type earthquake, got %q", ev.EarthType())
	}
	if ev.PreferredOriginID() != "smi:test/origin/1" {
		t.Errorf("Expected preferred origin reference, got %q", ev.PreferredOriginID())
	}
}

// TestBuildEvent_MalformedDescription tests that a text-only description
// where a record was expected aborts the build.
func TestBuildEvent_MalformedDescription(t *testing.T) {
	node := buildNode(t, `<event publicID="smi:test/event/2">
  <description>just a bare string</description>
</event>`)

	b := &builder{source: "fragment.xml"}
	_, err := b.event(node)
	if err == nil {
		t.Fatal("Expected error for malformed description block")
	}

	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("Expected StructuralError, got %T", err)
	}
	if !errors.Is(err, catalog.ErrParse) {
		t.Errorf("Expected parse error classification, got: %v", err)
	}
}

// TestBuildEvent_WithoutName tests that an event with no matching
// description record keeps an empty name.
func TestBuildEvent_WithoutName(t *testing.T) {
	node := buildNode(t, `<event publicID="smi:test/event/3">
  <type>earthquake</type>
</event>`)

	b := &builder{source: "fragment.xml"}
	ev, err := b.event(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ev.Name() != "" {
		t.Errorf("Expected empty name, got %q", ev.Name())
	}
}

// TestBuildPick tests pick construction with uncertainty bounds.
func TestBuildPick(t *testing.T) {
	node := buildNode(t, `<pick publicID="smi:test/pick/1">
  <time>
    <value>2019-05-23T02:22:59.120000Z</value>
    <lowerUncertainty>1.0</lowerUncertainty>
    <upperUncertainty>2.0</upperUncertainty>
  </time>
  <phaseHint>P</phaseHint>
</pick>`)

	b := &builder{source: "fragment.xml"}
	pick, err := b.pick(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if pick.PhaseHint() != "P" {
		t.Errorf("Expected phase hint P, got %q", pick.PhaseHint())
	}
	want := time.Date(2019, 5, 23, 2, 22, 59, 120000000, time.UTC)
	if !pick.Time().Equal(want) {
		t.Errorf("Expected time %v, got %v", want, pick.Time())
	}
	if v, ok := pick.LowerUncertainty(); !ok || v != 1.0 {
		t.Errorf("Expected lower uncertainty 1.0, got %g (present=%v)", v, ok)
	}
}

// TestBuildArrival_TimeLeftUnset tests that arrival construction never
// assigns a timestamp of its own.
func TestBuildArrival_TimeLeftUnset(t *testing.T) {
	node := buildNode(t, `<arrival publicID="smi:test/arrival/1">
  <pickID>smi:test/pick/1</pickID>
  <phase>P</phase>
  <lowerUncertainty>0.5</lowerUncertainty>
</arrival>`)

	b := &builder{source: "fragment.xml"}
	arrival, err := b.arrival(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if arrival.PickID() != "smi:test/pick/1" {
		t.Errorf("Expected pick reference, got %q", arrival.PickID())
	}
	if arrival.PhaseLabel() != "P" {
		t.Errorf("Expected phase label P, got %q", arrival.PhaseLabel())
	}
	if _, ok := arrival.Time(); ok {
		t.Error("Expected arrival time to be unset before linking")
	}
	if v, ok := arrival.LowerUncertainty(); !ok || v != 0.5 {
		t.Errorf("Expected lower uncertainty 0.5, got %g (present=%v)", v, ok)
	}
}

// TestBuildSingleStationPick tests extension pick construction.
func TestBuildSingleStationPick(t *testing.T) {
	node := buildNode(t, `<sst:singleStationPick publicID="smi:test/sstpick/1"
    xmlns:sst="http://quakeml.org/xmlns/singlestation/1.0">
  <sst:pickReference>smi:test/pick/1</sst:pickReference>
  <sst:frequency>
    <sst:value>2.4</sst:value>
    <sst:lowerUncertainty>0.1</sst:lowerUncertainty>
    <sst:upperUncertainty>0.2</sst:upperUncertainty>
  </sst:frequency>
</sst:singleStationPick>`)

	b := &builder{source: "fragment.xml"}
	rec, err := b.singleStationPick(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.pickRef != "smi:test/pick/1" {
		t.Errorf("Expected pick reference, got %q", rec.pickRef)
	}
	if f, ok := rec.pick.Frequency(); !ok || f != 2.4 {
		t.Errorf("Expected frequency 2.4, got %g (present=%v)", f, ok)
	}
	if v, ok := rec.pick.FrequencyLowerUncertainty(); !ok || v != 0.1 {
		t.Errorf("Expected frequency lower uncertainty 0.1, got %g (present=%v)", v, ok)
	}
}

// TestBuildSingleStationOrigin_PDFArrays tests extension origin
// construction including the whitespace-delimited sample arrays.
func TestBuildSingleStationOrigin_PDFArrays(t *testing.T) {
	node := buildNode(t, `<sst:singleStationOrigin publicID="smi:test/sstorigin/1"
    xmlns:sst="http://quakeml.org/xmlns/singlestation/1.0">
  <sst:bedOriginReference>smi:test/origin/1</sst:bedOriginReference>
  <sst:distance>
    <sst:distance>
      <sst:value>26.4</sst:value>
      <sst:pdf>
        <sst:variable>25.0 26.0 27.0</sst:variable>
        <sst:probability>0.2 0.6 0.2</sst:probability>
      </sst:pdf>
    </sst:distance>
  </sst:distance>
  <sst:azimuth>
    <sst:azimuth><sst:value>74.0</sst:value></sst:azimuth>
  </sst:azimuth>
</sst:singleStationOrigin>`)

	b := &builder{source: "fragment.xml"}
	rec, err := b.singleStationOrigin(node)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.originRef != "smi:test/origin/1" {
		t.Errorf("Expected origin reference, got %q", rec.originRef)
	}
	if d, ok := rec.params.Distance(); !ok || d != 26.4 {
		t.Errorf("Expected distance 26.4, got %g (present=%v)", d, ok)
	}
	if baz, ok := rec.params.BAZ(); !ok || baz != 74.0 {
		t.Errorf("Expected BAZ 74.0, got %g (present=%v)", baz, ok)
	}

	variable, pdf := rec.params.DistancePDF()
	if len(variable) != 3 || len(pdf) != 3 {
		t.Fatalf("Expected 3-sample distance PDF, got %d/%d", len(variable), len(pdf))
	}
	if variable[1] != 26.0 || pdf[1] != 0.6 {
		t.Errorf("Expected sample (26.0, 0.6), got (%g, %g)", variable[1], pdf[1])
	}

	if bazVariable, bazPDF := rec.params.BAZPDF(); bazVariable != nil || bazPDF != nil {
		t.Error("Expected no azimuth PDF samples")
	}
}

// TestBuildSingleStationOrigin_MismatchedPDF tests that sample arrays of
// different length are rejected.
func TestBuildSingleStationOrigin_MismatchedPDF(t *testing.T) {
	node := buildNode(t, `<sst:singleStationOrigin
    xmlns:sst="http://quakeml.org/xmlns/singlestation/1.0">
  <sst:bedOriginReference>smi:test/origin/1</sst:bedOriginReference>
  <sst:distance>
    <sst:distance>
      <sst:pdf>
        <sst:variable>25.0 26.0 27.0</sst:variable>
        <sst:probability>0.2 0.6</sst:probability>
      </sst:pdf>
    </sst:distance>
  </sst:distance>
</sst:singleStationOrigin>`)

	b := &builder{source: "fragment.xml"}
	_, err := b.singleStationOrigin(node)
	if err == nil {
		t.Fatal("Expected error for mismatched PDF array lengths")
	}
	if !errors.Is(err, catalog.ErrParse) {
		t.Errorf("Expected parse error classification, got: %v", err)
	}
}
