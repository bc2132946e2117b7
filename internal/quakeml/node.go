package quakeml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Node is one element of the generically decoded document tree. Children
// are addressable by their document tag name (namespace prefix included,
// as written in the document), attributes by their attribute name.
//
// A repeatable element occurring once decodes to a single child; every
// consumer that expects a collection must go through Children, which
// normalizes the singleton case to a one-element slice. Child is the
// accessor for genuinely singular elements.
type Node struct {
	name      string
	text      string
	attrs     map[string]string
	children  map[string][]*Node
	childKeys []string // insertion order of first occurrence per key
}

func newNode(name string) *Node {
	return &Node{
		name:     name,
		attrs:    make(map[string]string),
		children: make(map[string][]*Node),
	}
}

// Name returns the node's tag name as keyed in its parent.
func (n *Node) Name() string { return n.name }

// Text returns the node's character data with surrounding whitespace
// trimmed.
func (n *Node) Text() string { return strings.TrimSpace(n.text) }

// Attr returns the named attribute value. The second return value is
// false when the attribute is absent.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Child returns the first child with the given tag name, or nil.
func (n *Node) Child(name string) *Node {
	if kids := n.children[name]; len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// Children returns all children with the given tag name in document
// order. A single occurrence yields a one-element slice; this is the
// mandatory normalization point for every repeatable element.
func (n *Node) Children(name string) []*Node {
	return n.children[name]
}

// Has reports whether at least one child with the given tag name exists.
func (n *Node) Has(name string) bool {
	return len(n.children[name]) > 0
}

// IsLeaf reports whether the node has no element children, i.e. carries
// only text content.
func (n *Node) IsLeaf() bool { return len(n.childKeys) == 0 }

func (n *Node) addChild(key string, child *Node) {
	if _, seen := n.children[key]; !seen {
		n.childKeys = append(n.childKeys, key)
	}
	n.children[key] = append(n.children[key], child)
}

// nsScope reconstructs the document's own namespace prefixes. The Go
// decoder resolves prefixes to namespace URLs; catalog consumers address
// elements the way the document writes them ("mars:distance"), so the
// declarations are tracked and reversed here.
type nsScope struct {
	stack []map[string]string // URL -> prefix, innermost last
}

func (s *nsScope) push(attrs []xml.Attr) {
	frame := make(map[string]string)
	for _, a := range attrs {
		if a.Name.Space == "xmlns" {
			frame[a.Value] = a.Name.Local
		}
	}
	s.stack = append(s.stack, frame)
}

func (s *nsScope) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *nsScope) prefixFor(url string) (string, bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if p, ok := s.stack[i][url]; ok {
			return p, true
		}
	}
	return "", false
}

// keyFor renders an element or attribute name the way the document
// spells it: prefixed for declared namespaces, bare otherwise.
func (s *nsScope) keyFor(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if prefix, ok := s.prefixFor(name.Space); ok {
		return prefix + ":" + name.Local
	}
	// An unresolvable Space that does not look like a URL is a verbatim,
	// undeclared prefix; keep it. URLs without a prefix belong to a
	// default namespace and stay bare.
	if !strings.ContainsAny(name.Space, "/:") {
		return name.Space + ":" + name.Local
	}
	return name.Local
}

// decode turns raw document bytes into the generic node tree. The
// returned node is a synthetic document node whose single child is the
// root element.
func decode(data []byte, source string) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	doc := newNode("")
	stack := []*Node{doc}
	var scope nsScope
	scope.push(nil)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err, source)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			scope.push(t.Attr)
			child := newNode(scope.keyFor(t.Name))
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				child.attrs[scope.keyFor(a.Name)] = a.Value
			}
			parent := stack[len(stack)-1]
			parent.addChild(child.name, child)
			stack = append(stack, child)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scope.pop()

		case xml.CharData:
			stack[len(stack)-1].text += string(t)
		}
	}

	if len(stack) != 1 {
		return nil, &StructuralError{
			Source:  source,
			Message: "document ended with unclosed elements",
			Hint:    "The catalog document is truncated.",
		}
	}
	if len(doc.childKeys) == 0 {
		return nil, &StructuralError{
			Source:  source,
			Message: "document has no root element",
			Hint:    "Expected a quakeml root container.",
		}
	}
	return doc, nil
}
