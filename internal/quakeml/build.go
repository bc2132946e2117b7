package quakeml

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

// builder constructs data-model entities from decoded nodes. It carries
// the document source identifier for error context only; builders are
// otherwise stateless transforms.
type builder struct {
	source string
}

// timeLayouts are the timestamp renderings accepted in catalog
// documents, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006/01/02 15:04:05",
	"20060102150405",
}

func (b *builder) parseTime(value, element string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &StructuralError{
		Source:  b.source,
		Element: element,
		Message: fmt.Sprintf("unrecognized timestamp %q", value),
		Hint:    "Timestamps must be ISO 8601, e.g. 2019-01-01T00:00:00Z.",
	}
}

func (b *builder) parseFloat(value, element string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &StructuralError{
			Source:  b.source,
			Element: element,
			Message: fmt.Sprintf("invalid numeric value %q", value),
		}
	}
	return f, nil
}

// parseFloats parses a whitespace-delimited numeric array, the encoding
// the extension namespace uses for PDF sample arrays.
func (b *builder) parseFloats(value, element string) ([]float64, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]float64, len(fields))
	for i, field := range fields {
		f, err := b.parseFloat(field, element)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// requireMapping rejects a text-only node where element children are
// required.
func (b *builder) requireMapping(n *Node, element string) error {
	if n.IsLeaf() {
		return &StructuralError{
			Source:  b.source,
			Element: element,
			Message: "element carries only text where child elements were expected",
		}
	}
	return nil
}

func (b *builder) publicID(n *Node, element string) (string, error) {
	id, ok := n.Attr("publicID")
	if !ok || id == "" {
		return "", missingError(b.source, element, "publicID attribute")
	}
	return id, nil
}

// childValue returns the text of <name><value>...</value></name> under n.
func childValue(n *Node, name, valueName string) (string, bool) {
	child := n.Child(name)
	if child == nil {
		return "", false
	}
	value := child.Child(valueName)
	if value == nil {
		return "", false
	}
	return value.Text(), true
}

// origin builds one Origin from its document node. Depth defaults to
// 50 km when the document carries none; the mars extension fields stay
// unset when absent.
func (b *builder) origin(n *Node) (*catalog.Origin, error) {
	if err := b.requireMapping(n, "origin"); err != nil {
		return nil, err
	}
	id, err := b.publicID(n, "origin")
	if err != nil {
		return nil, err
	}
	element := fmt.Sprintf("origin %q", id)

	timeText, ok := childValue(n, "time", "value")
	if !ok {
		return nil, missingError(b.source, element, "time value")
	}
	originTime, err := b.parseTime(timeText, element)
	if err != nil {
		return nil, err
	}

	latText, ok := childValue(n, "latitude", "value")
	if !ok {
		return nil, missingError(b.source, element, "latitude value")
	}
	lat, err := b.parseFloat(latText, element)
	if err != nil {
		return nil, err
	}

	lonText, ok := childValue(n, "longitude", "value")
	if !ok {
		return nil, missingError(b.source, element, "longitude value")
	}
	lon, err := b.parseFloat(lonText, element)
	if err != nil {
		return nil, err
	}

	depth := catalog.DefaultDepthMeters
	if depthText, ok := childValue(n, "depth", "value"); ok {
		depth, err = b.parseFloat(depthText, element)
		if err != nil {
			return nil, err
		}
	}

	origin := catalog.NewOrigin(id, originTime, lat, lon, depth)

	if quality := n.Child("mars:locationQuality"); quality != nil {
		origin.SetQuality(translateQuality(quality.Text()))
	}
	if distText, ok := childValue(n, "mars:distance", "mars:value"); ok {
		dist, err := b.parseFloat(distText, element)
		if err != nil {
			return nil, err
		}
		origin.SetDistance(dist)
	}
	if bazText, ok := childValue(n, "mars:BAZ", "mars:value"); ok {
		baz, err := b.parseFloat(bazText, element)
		if err != nil {
			return nil, err
		}
		origin.SetBAZ(baz)
	}
	if snr := n.Child("mars:snr"); snr != nil {
		if snrText, ok := snr.Attr("snrMQS"); ok {
			v, err := b.parseFloat(snrText, element)
			if err != nil {
				return nil, err
			}
			origin.SetSNR(v)
		}
	}

	return origin, nil
}

// magnitude builds one Magnitude, or nil when the document entry has no
// numeric value element. A value-less magnitude is absent, not an error.
func (b *builder) magnitude(n *Node) (*catalog.Magnitude, error) {
	if err := b.requireMapping(n, "magnitude"); err != nil {
		return nil, err
	}
	id, err := b.publicID(n, "magnitude")
	if err != nil {
		return nil, err
	}
	element := fmt.Sprintf("magnitude %q", id)

	mag := n.Child("mag")
	if mag == nil {
		return nil, nil
	}
	value := mag.Child("value")
	if value == nil {
		return nil, nil
	}
	v, err := b.parseFloat(value.Text(), element)
	if err != nil {
		return nil, err
	}

	var magType, originID string
	if t := n.Child("type"); t != nil {
		magType = t.Text()
	}
	if ref := n.Child("originID"); ref != nil {
		originID = ref.Text()
	}

	m := catalog.NewMagnitude(id, originID, magType, v)

	if lower := mag.Child("lowerUncertainty"); lower != nil {
		lv, err := b.parseFloat(lower.Text(), element)
		if err != nil {
			return nil, err
		}
		m.SetLowerUncertainty(lv)
	}
	if upper := mag.Child("upperUncertainty"); upper != nil {
		uv, err := b.parseFloat(upper.Text(), element)
		if err != nil {
			return nil, err
		}
		m.SetUpperUncertainty(uv)
	}

	return m, nil
}

// eventName extracts the display name from the description block. The
// block holds one or more records; the record typed "earthquake name"
// carries the name. A text-only description where a record was expected
// is fatal: the name is a primary lookup key downstream and silently
// dropping it would poison later queries.
func (b *builder) eventName(n *Node, element string) (string, error) {
	var name string
	for _, desc := range n.Children("description") {
		if desc.IsLeaf() {
			return "", &StructuralError{
				Source:  b.source,
				Element: element,
				Message: fmt.Sprintf("invalid description block %q", desc.Text()),
				Hint:    "Event descriptions must be records with type and text elements.",
			}
		}
		descType := desc.Child("type")
		if descType != nil && descType.Text() == "earthquake name" {
			if text := desc.Child("text"); text != nil {
				name = text.Text()
			}
		}
	}
	return name, nil
}

// event builds one Event with its inline picks. Origins, magnitudes and
// cross-references are attached by the linker.
func (b *builder) event(n *Node) (*catalog.Event, error) {
	if err := b.requireMapping(n, "event"); err != nil {
		return nil, err
	}
	id, err := b.publicID(n, "event")
	if err != nil {
		return nil, err
	}
	element := fmt.Sprintf("event %q", id)

	name, err := b.eventName(n, element)
	if err != nil {
		return nil, err
	}

	ev := catalog.NewEvent(id, name)

	if marsType := n.Child("mars:type"); marsType != nil {
		ev.SetMarsType(translateEventType(marsType.Text()))
	}
	if earthType := n.Child("type"); earthType != nil {
		ev.SetEarthType(earthType.Text())
	}
	if interp := n.Child("mars:typeInterpretation"); interp != nil {
		ev.SetInterpretation(translateInterpretation(interp.Text()))
	}
	if ref := n.Child("preferredOriginID"); ref != nil {
		ev.SetPreferredOriginID(ref.Text())
	}
	if ref := n.Child("preferredMagnitudeID"); ref != nil {
		ev.SetPreferredMagnitudeID(ref.Text())
	}

	for _, pickNode := range n.Children("pick") {
		pick, err := b.pick(pickNode)
		if err != nil {
			return nil, err
		}
		if err := ev.AppendPick(pick); err != nil {
			return nil, err
		}
	}

	return ev, nil
}

// pick builds one Pick from its document node.
func (b *builder) pick(n *Node) (*catalog.Pick, error) {
	if err := b.requireMapping(n, "pick"); err != nil {
		return nil, err
	}
	id, err := b.publicID(n, "pick")
	if err != nil {
		return nil, err
	}
	element := fmt.Sprintf("pick %q", id)

	timeNode := n.Child("time")
	if timeNode == nil || timeNode.Child("value") == nil {
		return nil, missingError(b.source, element, "time value")
	}
	pickTime, err := b.parseTime(timeNode.Child("value").Text(), element)
	if err != nil {
		return nil, err
	}

	var phaseHint string
	if hint := n.Child("phaseHint"); hint != nil {
		phaseHint = hint.Text()
	}

	pick := catalog.NewPick(id, pickTime, phaseHint)

	if lower := timeNode.Child("lowerUncertainty"); lower != nil {
		lv, err := b.parseFloat(lower.Text(), element)
		if err != nil {
			return nil, err
		}
		pick.SetLowerUncertainty(lv)
	}
	if upper := timeNode.Child("upperUncertainty"); upper != nil {
		uv, err := b.parseFloat(upper.Text(), element)
		if err != nil {
			return nil, err
		}
		pick.SetUpperUncertainty(uv)
	}

	return pick, nil
}

// arrival builds one Arrival. The time is deliberately left unset: the
// document's arrival nodes carry no trustworthy timestamp, so the linker
// fills it from the referenced pick.
func (b *builder) arrival(n *Node) (*catalog.Arrival, error) {
	if err := b.requireMapping(n, "arrival"); err != nil {
		return nil, err
	}
	id, err := b.publicID(n, "arrival")
	if err != nil {
		return nil, err
	}
	element := fmt.Sprintf("arrival %q", id)

	pickRef := n.Child("pickID")
	if pickRef == nil {
		return nil, missingError(b.source, element, "pickID reference")
	}

	var phaseLabel string
	if phase := n.Child("phase"); phase != nil {
		phaseLabel = phase.Text()
	}

	arrival := catalog.NewArrival(id, pickRef.Text(), phaseLabel)

	if lower := n.Child("lowerUncertainty"); lower != nil {
		lv, err := b.parseFloat(lower.Text(), element)
		if err != nil {
			return nil, err
		}
		arrival.SetLowerUncertainty(lv)
	}
	if upper := n.Child("upperUncertainty"); upper != nil {
		uv, err := b.parseFloat(upper.Text(), element)
		if err != nil {
			return nil, err
		}
		arrival.SetUpperUncertainty(uv)
	}

	return arrival, nil
}
