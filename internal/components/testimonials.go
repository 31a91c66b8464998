package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// Testimonials renders the customer quotes.
type Testimonials struct {
	runtime.ComponentBase
	Items []content.Testimonial
}

func (t *Testimonials) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Testimonials); ok {
		t.Items = src.Items
	}
}

func (t *Testimonials) Render(r runtime.Renderer) *vdom.VNode {
	cards := make([]*Card, len(t.Items))
	for i, item := range t.Items {
		cards[i] = TestimonialCard(item)
	}
	return sectionBlock(content.AnchorTestimonials, "bg-gradient-to-br from-gray-50 to-primary-50", content.TestimonialsHeader,
		Grid(r, content.AnchorTestimonials, cards),
	)
}

// TestimonialRecord projects a testimonial onto a content record: the
// rating stars are the marker and the quote is the body.
func TestimonialRecord(item content.Testimonial) content.Record {
	return content.Record{
		ID:     item.ID,
		Marker: content.Some(content.Element(ratingStars(item.Rating))),
		Body:   content.Some(`"` + item.Quote + `"`),
	}
}

// TestimonialCard builds the card for a testimonial with the author block in the extra slot.
func TestimonialCard(item content.Testimonial) *Card {
	return &Card{
		Record: TestimonialRecord(item),
		Class:  "p-8 rounded-xl shadow-lg italic",
		Extra: []*vdom.VNode{
			vdom.Div(map[string]any{"class": "author flex items-center gap-4"},
				vdom.Div(map[string]any{"class": "text-4xl"}, vdom.Text(item.Photo)),
				vdom.Div(nil,
					vdom.Paragraph(item.Name, map[string]any{"class": "font-semibold text-gray-900"}),
					vdom.Paragraph(item.Role, map[string]any{"class": "text-sm text-gray-600"}),
				),
			),
		},
	}
}

func ratingStars(n int) *vdom.VNode {
	stars := make([]*vdom.VNode, 0, max(n, 0))
	for i := 0; i < n; i++ {
		stars = append(stars, vdom.Span("★", map[string]any{"class": "star text-yellow-400"}))
	}
	return vdom.Div(map[string]any{"class": "rating flex gap-1", "aria-label": "rating"}, stars...)
}
