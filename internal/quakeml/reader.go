package quakeml

import (
	"fmt"
	"os"

	"github.com/vvka-141/marsquake/internal/logging"
	"github.com/vvka-141/marsquake/pkg/catalog"
)

// Reader ingests catalog documents. The zero value is not usable; use
// NewReader.
type Reader struct {
	logger catalog.Logger
}

var _ catalog.Reader = (*Reader)(nil)

// NewReader creates a document reader. A nil logger disables progress
// output.
func NewReader(logger catalog.Logger) *Reader {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Reader{logger: logger}
}

// ReadFile ingests the catalog document at the given path. Ingestion is
// all-or-nothing: a structural failure anywhere in the document returns
// an error and no catalog.
func (r *Reader) ReadFile(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog document %s: %w", path, catalog.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("reading catalog document %s: %w", path, err)
	}
	return r.Parse(data, path)
}

// Parse ingests one catalog document held in memory. The source string
// identifies the document in errors and in the catalog's provenance.
func (r *Reader) Parse(data []byte, source string) (*catalog.Catalog, error) {
	r.logger.Verbose("Decoding catalog document %s (%d bytes)", source, len(data))

	doc, err := decode(data, source)
	if err != nil {
		return nil, err
	}

	root := documentRoot(doc)
	if root == nil {
		return nil, missingError(source, "document", "quakeml root element")
	}
	params := root.Child("eventParameters")
	if params == nil {
		return nil, missingError(source, "quakeml", "eventParameters element")
	}

	b := &builder{source: source}
	l := &linker{b: b}

	// The single-station container is a sibling of eventParameters under
	// the document root. Some writers nest it under eventParameters
	// instead; accept both placements.
	var containers []*Node
	containers = append(containers, root.Children("sst:singleStationParameters")...)
	containers = append(containers, params.Children("sst:singleStationParameters")...)
	for _, container := range containers {
		for _, node := range container.Children("sst:singleStationPick") {
			rec, err := b.singleStationPick(node)
			if err != nil {
				return nil, err
			}
			l.sstPicks = append(l.sstPicks, rec)
		}
		for _, node := range container.Children("sst:singleStationOrigin") {
			rec, err := b.singleStationOrigin(node)
			if err != nil {
				return nil, err
			}
			l.sstOrigins = append(l.sstOrigins, rec)
		}
	}

	events, err := l.link(params.Children("event"))
	if err != nil {
		return nil, err
	}

	r.logger.Verbose("Linked %d events from %s", len(events), source)
	return catalog.New(events, source), nil
}

// documentRoot finds the quakeml root element under the synthetic
// document node, with or without its conventional namespace prefix.
func documentRoot(doc *Node) *Node {
	if root := doc.Child("q:quakeml"); root != nil {
		return root
	}
	return doc.Child("quakeml")
}
