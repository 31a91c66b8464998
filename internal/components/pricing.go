package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// Plan card modifiers. Only the highlighted plan carries HighlightedClass.
const (
	HighlightedClass = "highlighted"
	planClass        = "relative rounded-2xl shadow-lg p-8 border border-gray-200"
	highlightedClass = HighlightedClass + " relative rounded-2xl shadow-lg p-8 border-2 border-primary-500 lg:scale-105"
	BadgeText        = "Most Popular"
)

// Pricing renders the pricing table.
type Pricing struct {
	runtime.ComponentBase
	Plans []content.Plan
}

func (p *Pricing) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Pricing); ok {
		p.Plans = src.Plans
	}
}

func (p *Pricing) Render(r runtime.Renderer) *vdom.VNode {
	cards := make([]*Card, len(p.Plans))
	for i, plan := range p.Plans {
		cards[i] = PlanCard(plan)
	}
	return sectionBlock(content.AnchorPricing, "bg-white", content.PricingHeader,
		Grid(r, content.AnchorPricing, cards),
	)
}

// PlanRecord projects a plan onto a content record. A highlighted plan gets
// the badge as its marker; other plans have none.
func PlanRecord(plan content.Plan) content.Record {
	rec := content.Record{
		ID:    plan.ID,
		Title: content.Some(plan.Name),
		Body:  content.Some(plan.Description),
	}
	if plan.Highlighted {
		rec.Marker = content.Some(content.Element(
			vdom.Span(BadgeText, map[string]any{
				"class": "badge bg-gradient-to-r from-primary-600 to-blue-600 text-white px-4 py-1 rounded-full text-sm font-semibold",
			}),
		))
	}
	return rec
}

// PlanCard builds the card for a plan: price, call-to-action and the
// feature list go into the extra slot.
func PlanCard(plan content.Plan) *Card {
	class, ctaClass := planClass, "bg-gray-100 text-gray-900 hover:bg-gray-200"
	if plan.Highlighted {
		class, ctaClass = highlightedClass, "bg-primary-600 text-white hover:bg-primary-700"
	}

	items := make([]*vdom.VNode, len(plan.Features))
	for i, f := range plan.Features {
		items[i] = vdom.ListItem(map[string]any{"class": "flex items-start gap-3"},
			vdom.Span("✓", map[string]any{"class": "text-primary-600"}),
			vdom.Span(f, map[string]any{"class": "text-gray-700"}),
		)
	}

	return &Card{
		Record: PlanRecord(plan),
		Class:  class,
		Extra: []*vdom.VNode{
			vdom.Div(map[string]any{"class": "plan-price mb-6"},
				vdom.Span(plan.Price, map[string]any{"class": "text-5xl font-bold text-gray-900"}),
				vdom.Span(plan.Period, map[string]any{"class": "text-gray-600 text-lg"}),
			),
			vdom.Anchor("#", map[string]any{
				"class": vdom.ClassNames("plan-cta block w-full text-center py-3 px-6 rounded-lg font-semibold mb-8", ctaClass),
			}, vdom.Text(plan.CTA)),
			vdom.List(map[string]any{"class": "plan-features space-y-4"}, items...),
		},
	}
}
