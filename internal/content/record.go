package content

import "github.com/vcrobe/nojs-landing/vdom"

// MarkerKind tells which representation a Marker carries.
type MarkerKind int

const (
	// SymbolMarker is a short glyph or label rendered as text.
	SymbolMarker MarkerKind = iota
	// ElementMarker is an already built node passed through unchanged.
	ElementMarker
)

// Marker is the leading visual cue of a card: either a plain symbol or a
// pre-rendered element. Renderers pass either form through without
// inspecting it.
type Marker struct {
	kind   MarkerKind
	symbol string
	node   *vdom.VNode
}

// Symbol returns a marker holding a plain glyph or label.
func Symbol(s string) Marker {
	return Marker{kind: SymbolMarker, symbol: s}
}

// Element returns a marker holding a pre-rendered node.
func Element(n *vdom.VNode) Marker {
	return Marker{kind: ElementMarker, node: n}
}

// Kind reports the marker representation.
func (m Marker) Kind() MarkerKind {
	return m.kind
}

// SymbolText returns the symbol for SymbolMarker values.
func (m Marker) SymbolText() string {
	return m.symbol
}

// Node returns the node for ElementMarker values.
func (m Marker) Node() *vdom.VNode {
	return m.node
}

// Record is one displayable card's content. Every field but ID is optional.
// ID is unique within a sequence and only keys the rendered unit across
// re-renders; order comes from the sequence itself.
type Record struct {
	ID     string
	Marker Optional[Marker]
	Title  Optional[string]
	Body   Optional[string]
}

// NewRecord builds a record with all three regions present.
func NewRecord(id string, marker Marker, title, body string) Record {
	return Record{
		ID:     id,
		Marker: Some(marker),
		Title:  Some(title),
		Body:   Some(body),
	}
}
