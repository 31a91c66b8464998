package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// GridClass identifies a card collection container.
const GridClass = "card-grid grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"

// Grid renders one keyed card per entry, in input order, inside a single
// collection container. Keys are scope + "/" + record ID.
func Grid(r runtime.Renderer, scope string, cards []*Card) *vdom.VNode {
	children := make([]*vdom.VNode, 0, len(cards))
	for _, c := range cards {
		children = append(children, r.RenderChild(scope+"/"+c.Record.ID, c))
	}
	return vdom.Div(map[string]any{"class": GridClass}, children...)
}

// RecordCards wraps plain records into cards sharing one style modifier.
func RecordCards(records []content.Record, modifier string) []*Card {
	cards := make([]*Card, len(records))
	for i, rec := range records {
		cards[i] = &Card{Record: rec, Class: modifier}
	}
	return cards
}

// sectionBlock renders a page section with its header followed by body.
func sectionBlock(id, class string, header content.SectionHeader, body *vdom.VNode) *vdom.VNode {
	attrs := map[string]any{"class": vdom.ClassNames("py-20 lg:py-32 px-4 sm:px-6 lg:px-8", class)}
	if id != "" {
		attrs["id"] = id
	}
	return vdom.Section(attrs,
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto"},
			vdom.Div(map[string]any{"class": "section-header text-center mb-16"},
				vdom.Heading(2, map[string]any{"class": "text-3xl sm:text-4xl lg:text-5xl font-bold text-gray-900 mb-4"},
					vdom.Text(header.Lead+" "),
					vdom.Span(header.Highlight, map[string]any{"class": "text-gradient"}),
				),
				vdom.Paragraph(header.Subtitle, map[string]any{"class": "text-lg sm:text-xl text-gray-600 max-w-3xl mx-auto"}),
			),
			body,
		),
	)
}
