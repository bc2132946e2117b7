package quakeml

import (
	"fmt"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

// sstOrigin is a decoded single-station origin record awaiting linkage.
// The reference names the base origin the record extends; the linker
// resolves it across every event in the document.
type sstOrigin struct {
	originRef string
	params    *catalog.SingleStationParameters
}

// sstPick is a decoded single-station pick record awaiting linkage.
type sstPick struct {
	pickRef string
	pick    *catalog.SingleStationPick
}

// singleStationOrigin builds one extension origin record. The distance
// and azimuth containers each hold an optional point estimate plus an
// optional sampled probability density.
func (b *builder) singleStationOrigin(n *Node) (*sstOrigin, error) {
	if err := b.requireMapping(n, "sst:singleStationOrigin"); err != nil {
		return nil, err
	}
	id, _ := n.Attr("publicID")
	element := "sst:singleStationOrigin"
	if id != "" {
		element = fmt.Sprintf("sst:singleStationOrigin %q", id)
	}

	ref := n.Child("sst:bedOriginReference")
	if ref == nil || ref.Text() == "" {
		return nil, missingError(b.source, element, "sst:bedOriginReference")
	}

	params := catalog.NewSingleStationParameters(id)

	// The document nests each measurement twice: the outer container
	// wraps an inner element of the same name holding the value and the
	// sampled density.
	if inner := nestedChild(n, "sst:distance"); inner != nil {
		if v := inner.Child("sst:value"); v != nil {
			f, err := b.parseFloat(v.Text(), element)
			if err != nil {
				return nil, err
			}
			params.SetDistance(f)
		}
		variable, pdf, err := b.pdfArrays(inner, element)
		if err != nil {
			return nil, err
		}
		if variable != nil || pdf != nil {
			if err := params.SetDistancePDF(variable, pdf); err != nil {
				return nil, &StructuralError{
					Source:  b.source,
					Element: element,
					Message: err.Error(),
				}
			}
		}
	}

	if inner := nestedChild(n, "sst:azimuth"); inner != nil {
		if v := inner.Child("sst:value"); v != nil {
			f, err := b.parseFloat(v.Text(), element)
			if err != nil {
				return nil, err
			}
			params.SetBAZ(f)
		}
		variable, pdf, err := b.pdfArrays(inner, element)
		if err != nil {
			return nil, err
		}
		if variable != nil || pdf != nil {
			if err := params.SetBAZPDF(variable, pdf); err != nil {
				return nil, &StructuralError{
					Source:  b.source,
					Element: element,
					Message: err.Error(),
				}
			}
		}
	}

	return &sstOrigin{originRef: ref.Text(), params: params}, nil
}

// nestedChild returns the inner measurement element, reaching through
// the outer container of the same name.
func nestedChild(n *Node, name string) *Node {
	outer := n.Child(name)
	if outer == nil {
		return nil
	}
	return outer.Child(name)
}

// pdfArrays extracts the sampled density arrays from a measurement
// container. The document encodes each array as whitespace-delimited
// numbers.
func (b *builder) pdfArrays(n *Node, element string) (variable, pdf []float64, err error) {
	pdfNode := n.Child("sst:pdf")
	if pdfNode == nil {
		return nil, nil, nil
	}
	if v := pdfNode.Child("sst:variable"); v != nil {
		variable, err = b.parseFloats(v.Text(), element)
		if err != nil {
			return nil, nil, err
		}
	}
	if p := pdfNode.Child("sst:probability"); p != nil {
		pdf, err = b.parseFloats(p.Text(), element)
		if err != nil {
			return nil, nil, err
		}
	}
	return variable, pdf, nil
}

// singleStationPick builds one extension pick record carrying a
// frequency measurement.
func (b *builder) singleStationPick(n *Node) (*sstPick, error) {
	if err := b.requireMapping(n, "sst:singleStationPick"); err != nil {
		return nil, err
	}
	id, _ := n.Attr("publicID")
	element := "sst:singleStationPick"
	if id != "" {
		element = fmt.Sprintf("sst:singleStationPick %q", id)
	}

	ref := n.Child("sst:pickReference")
	if ref == nil || ref.Text() == "" {
		return nil, missingError(b.source, element, "sst:pickReference")
	}

	pick := catalog.NewSingleStationPick(id)

	if freq := n.Child("sst:frequency"); freq != nil {
		if v := freq.Child("sst:value"); v != nil {
			f, err := b.parseFloat(v.Text(), element)
			if err != nil {
				return nil, err
			}
			pick.SetFrequency(f)
		}
		if lower := freq.Child("sst:lowerUncertainty"); lower != nil {
			f, err := b.parseFloat(lower.Text(), element)
			if err != nil {
				return nil, err
			}
			pick.SetFrequencyLowerUncertainty(f)
		}
		if upper := freq.Child("sst:upperUncertainty"); upper != nil {
			f, err := b.parseFloat(upper.Text(), element)
			if err != nil {
				return nil, err
			}
			pick.SetFrequencyUpperUncertainty(f)
		}
	}

	return &sstPick{pickRef: ref.Text(), pick: pick}, nil
}
