package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// Hero renders the banner at the top of the page. It has no props.
type Hero struct {
	runtime.ComponentBase
}

func (h *Hero) Render(r runtime.Renderer) *vdom.VNode {
	hero := content.Hero
	return vdom.Section(map[string]any{"class": "hero relative min-h-screen flex items-center justify-center px-4 sm:px-6 lg:px-8"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto w-full py-20 lg:py-32 text-center lg:text-left"},
			vdom.Heading(1, map[string]any{"class": "text-4xl sm:text-5xl lg:text-6xl font-bold text-gray-900 leading-tight mb-6"},
				vdom.Text(hero.Headline+" "),
				vdom.Span(hero.Highlight, map[string]any{"class": "text-gradient"}),
			),
			vdom.Paragraph(hero.Copy, map[string]any{"class": "text-lg sm:text-xl text-gray-600 mb-8 leading-relaxed max-w-2xl"}),
			vdom.Div(map[string]any{"class": "flex flex-col sm:flex-row gap-4"},
				vdom.Anchor(hero.Primary.Href(), map[string]any{
					"class": "cta-primary px-8 py-4 text-lg font-semibold text-white bg-primary-600 rounded-lg",
				}, vdom.Text(hero.Primary.Name)),
				vdom.Anchor(hero.Secondary.Href(), map[string]any{
					"class": "cta-secondary px-8 py-4 text-lg font-semibold text-primary-600 bg-white border-2 border-primary-600 rounded-lg",
				}, vdom.Text(hero.Secondary.Name)),
			),
		),
	)
}
