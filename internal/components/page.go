package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// MountID is the id of the element the page is rendered into, both when
// prerendered and when mounted by the wasm client.
const MountID = "app"

// Page is the root component: the navigation bar followed by the sections.
type Page struct {
	runtime.ComponentBase
}

func (p *Page) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page"},
		r.RenderChild("navbar", &Navbar{
			Brand: content.Brand,
			Links: content.NavLinks,
			CTA:   content.GetStarted,
		}),
		vdom.Main(map[string]any{"class": "pt-16"},
			r.RenderChild("hero", &Hero{}),
			r.RenderChild("features", &Features{Records: content.Features}),
			r.RenderChild("testimonials", &Testimonials{Items: content.Testimonials}),
			r.RenderChild("pricing", &Pricing{Plans: content.Plans}),
		),
	)
}
