package quakeml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

// TestReadFile_FullDocument tests end-to-end ingestion of a document
// through the filesystem entry point.
func TestReadFile_FullDocument(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<q:quakeml xmlns:q="http://quakeml.org/xmlns/quakeml/1.2"
           xmlns:mars="http://quakeml.org/xmlns/bed-rt/mars/1.0"
           xmlns="http://quakeml.org/xmlns/bed/1.2">
  <eventParameters publicID="smi:test/eventParameters">
    <event publicID="smi:test/event/1">
      <description>
        <type>earthquake name</type>
        <text>S0001a</text>
      </description>
      <mars:type>smi:insight.mqs/marsquake/eventtype/MarsEventType#HIGH_FREQUENCY</mars:type>
      <type>earthquake</type>
      <preferredOriginID>smi:test/origin/1</preferredOriginID>
      <pick publicID="smi:test/pick/1">
        <time><value>2019-01-01T00:01:30Z</value></time>
        <phaseHint>Pg</phaseHint>
      </pick>
      <origin publicID="smi:test/origin/1">
        <time><value>2019-01-01T00:00:00Z</value></time>
        <latitude><value>4.5</value></latitude>
        <longitude><value>135.6</value></longitude>
        <mars:locationQuality>smi:insight.mqs/marsquake/locationquality/MarsLocationQualityType#C</mars:locationQuality>
        <arrival publicID="smi:test/arrival/1">
          <pickID>smi:test/pick/1</pickID>
          <phase>Pg</phase>
        </arrival>
      </origin>
    </event>
  </eventParameters>
</q:quakeml>`

	path := filepath.Join(t.TempDir(), "catalog.xml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}

	cat, err := NewReader(nil).ReadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cat.Source() != path {
		t.Errorf("Expected source %q, got %q", path, cat.Source())
	}
	if cat.Len() != 1 {
		t.Fatalf("Expected 1 event, got %d", cat.Len())
	}

	ev := cat.EventByName("S0001a")
	if ev == nil {
		t.Fatal("Expected event S0001a")
	}
	if ev.MarsType() != "HF" {
		t.Errorf("Expected mars type HF, got %q", ev.MarsType())
	}

	origin := ev.PreferredOrigin()
	if origin == nil {
		t.Fatal("Expected resolved preferred origin")
	}
	if origin.Depth() != catalog.DefaultDepthMeters {
		t.Errorf("Expected default depth, got %g", origin.Depth())
	}
	if ev.Quality() != "C" {
		t.Errorf("Expected quality C through the preferred origin, got %q", ev.Quality())
	}

	arrival := origin.Arrival("Pg")
	if arrival == nil {
		t.Fatal("Expected linked arrival")
	}
	at, ok := arrival.Time()
	want := time.Date(2019, 1, 1, 0, 1, 30, 0, time.UTC)
	if !ok || !at.Equal(want) {
		t.Errorf("Expected arrival time %v, got %v (present=%v)", want, at, ok)
	}
}

// TestReadFile_MissingFile tests the error classification for an absent
// document.
func TestReadFile_MissingFile(t *testing.T) {
	_, err := NewReader(nil).ReadFile(filepath.Join(t.TempDir(), "no-such.xml"))
	if err == nil {
		t.Fatal("Expected error for missing document")
	}
	if !errors.Is(err, catalog.ErrCatalogNotFound) {
		t.Errorf("Expected catalog-not-found classification, got: %v", err)
	}
}

// TestParse_MissingRoot tests rejection of a document without a quakeml
// root element.
func TestParse_MissingRoot(t *testing.T) {
	_, err := NewReader(nil).Parse([]byte(`<other><eventParameters/></other>`), "test.xml")
	if err == nil {
		t.Fatal("Expected error for missing root element")
	}
	if !errors.Is(err, catalog.ErrParse) {
		t.Errorf("Expected parse error classification, got: %v", err)
	}
}

// TestParse_MissingEventParameters tests rejection of a root without an
// eventParameters container.
func TestParse_MissingEventParameters(t *testing.T) {
	doc := `<q:quakeml xmlns:q="http://quakeml.org/xmlns/quakeml/1.2"></q:quakeml>`
	_, err := NewReader(nil).Parse([]byte(doc), "test.xml")
	if err == nil {
		t.Fatal("Expected error for missing eventParameters")
	}
	if !errors.Is(err, catalog.ErrParse) {
		t.Errorf("Expected parse error classification, got: %v", err)
	}
}

// TestParse_UnprefixedRoot tests that a document spelling the root
// without a namespace prefix still ingests.
func TestParse_UnprefixedRoot(t *testing.T) {
	doc := `<quakeml>
  <eventParameters>
    <event publicID="smi:test/event/1"><type>earthquake</type></event>
  </eventParameters>
</quakeml>`

	cat, err := NewReader(nil).Parse([]byte(doc), "test.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Expected 1 event, got %d", cat.Len())
	}
}

// TestParse_SingleStationContainerAtRoot tests that the extension
// container is picked up as a sibling of eventParameters, which is
// where catalog writers place it.
func TestParse_SingleStationContainerAtRoot(t *testing.T) {
	doc := `<q:quakeml xmlns:q="http://quakeml.org/xmlns/quakeml/1.2"
           xmlns:sst="http://quakeml.org/xmlns/singlestation/1.0"
           xmlns="http://quakeml.org/xmlns/bed/1.2">
  <eventParameters>
    <event publicID="smi:test/event/1">
      <pick publicID="smi:test/pick/1">
        <time><value>2019-05-23T02:22:59Z</value></time>
        <phaseHint>P</phaseHint>
      </pick>
      <origin publicID="smi:test/origin/1">
        <time><value>2019-05-23T02:19:33Z</value></time>
        <latitude><value>11.28</value></latitude>
        <longitude><value>163.18</value></longitude>
      </origin>
    </event>
  </eventParameters>
  <sst:singleStationParameters>
    <sst:singleStationPick publicID="smi:test/sstpick/1">
      <sst:pickReference>smi:test/pick/1</sst:pickReference>
      <sst:frequency><sst:value>2.4</sst:value></sst:frequency>
    </sst:singleStationPick>
    <sst:singleStationOrigin publicID="smi:test/sstorigin/1">
      <sst:bedOriginReference>smi:test/origin/1</sst:bedOriginReference>
      <sst:azimuth>
        <sst:azimuth>
          <sst:value>74.0</sst:value>
          <sst:pdf>
            <sst:variable>73.0 74.0 75.0</sst:variable>
            <sst:probability>0.3 0.4 0.3</sst:probability>
          </sst:pdf>
        </sst:azimuth>
      </sst:azimuth>
    </sst:singleStationOrigin>
  </sst:singleStationParameters>
</q:quakeml>`

	cat, err := NewReader(nil).Parse([]byte(doc), "test.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	ev := cat.Events()[0]
	pick := ev.Pick("P")
	if pick == nil || pick.SingleStationPick() == nil {
		t.Fatal("Expected extension record on the pick")
	}
	if f, ok := pick.SingleStationPick().Frequency(); !ok || f != 2.4 {
		t.Errorf("Expected frequency 2.4, got %g (present=%v)", f, ok)
	}

	origin := ev.Origins()[0]
	if origin.SingleStationParameters() == nil {
		t.Fatal("Expected extension record on the origin")
	}
	if baz, ok := origin.BAZ(); !ok || baz != 74.0 {
		t.Errorf("Expected propagated BAZ 74.0, got %g (present=%v)", baz, ok)
	}
	variable, pdf := origin.SingleStationParameters().BAZPDF()
	if len(variable) != 3 || len(pdf) != 3 {
		t.Errorf("Expected 3-sample azimuth PDF, got %d/%d", len(variable), len(pdf))
	}
}

// TestParse_EmptyEventParameters tests that a document with no events
// yields an empty catalog rather than an error.
func TestParse_EmptyEventParameters(t *testing.T) {
	doc := `<quakeml><eventParameters></eventParameters></quakeml>`

	cat, err := NewReader(nil).Parse([]byte(doc), "test.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cat.Len() != 0 {
		t.Errorf("Expected empty catalog, got %d events", cat.Len())
	}
}

// TestParse_AbortsOnStructuralError tests all-or-nothing ingestion: a
// structural failure in any event returns no catalog.
func TestParse_AbortsOnStructuralError(t *testing.T) {
	doc := `<quakeml>
  <eventParameters>
    <event publicID="smi:test/event/1">
      <description>
        <type>earthquake name</type>
        <text>S0001a</text>
      </description>
    </event>
    <event publicID="smi:test/event/2">
      <description>malformed bare string</description>
    </event>
  </eventParameters>
</quakeml>`

	cat, err := NewReader(nil).Parse([]byte(doc), "test.xml")
	if err == nil {
		t.Fatal("Expected error for malformed event")
	}
	if cat != nil {
		t.Error("Expected no catalog alongside the error")
	}

	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("Expected StructuralError, got %T", err)
	}
}
