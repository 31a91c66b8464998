package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// Class tokens identifying the card container and its regions.
const (
	CardClass   = "card"
	MarkerClass = "card-marker"
	TitleClass  = "card-title"
	BodyClass   = "card-body"
)

const cardBaseClass = CardClass + " bg-white p-6 rounded-lg shadow-md hover:shadow-xl transition-shadow duration-300"

// Card projects one content record into a visual unit.
type Card struct {
	runtime.ComponentBase

	// --- PROPS ---

	Record content.Record

	// Class is appended to the base card classes.
	Class string

	// Extra is a slot rendered after the body region.
	Extra []*vdom.VNode
}

// ApplyProps takes the props of a freshly built card.
func (c *Card) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Card); ok {
		c.Record = src.Record
		c.Class = src.Class
		c.Extra = src.Extra
	}
}

func (c *Card) Render(r runtime.Renderer) *vdom.VNode {
	return RenderCard(c.Record, c.Class, c.Extra...)
}

// RenderCard renders the marker, title and body regions of rec, in that
// order, skipping absent ones, followed by extra. The record is only read.
func RenderCard(rec content.Record, modifier string, extra ...*vdom.VNode) *vdom.VNode {
	children := make([]*vdom.VNode, 0, 3+len(extra))

	if m, ok := rec.Marker.Get(); ok {
		children = append(children, vdom.Div(
			map[string]any{"class": MarkerClass + " text-4xl mb-4"},
			markerNode(m),
		))
	}

	if title, ok := rec.Title.Get(); ok {
		children = append(children, vdom.Heading(3,
			map[string]any{"class": TitleClass + " text-xl font-semibold mb-2 text-gray-900"},
			vdom.Text(title),
		))
	}

	if body, ok := rec.Body.Get(); ok {
		children = append(children, vdom.Paragraph(body,
			map[string]any{"class": BodyClass + " text-gray-600 leading-relaxed"},
		))
	}

	for _, n := range extra {
		if n != nil {
			children = append(children, n)
		}
	}

	return vdom.Div(
		map[string]any{"class": vdom.ClassNames(cardBaseClass, modifier)},
		children...,
	).WithKey(rec.ID)
}

func markerNode(m content.Marker) *vdom.VNode {
	if m.Kind() == content.ElementMarker {
		return m.Node()
	}
	return vdom.Text(m.SymbolText())
}
