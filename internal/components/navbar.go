package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// MenuState is the visibility of the mobile navigation menu.
type MenuState int

const (
	MenuClosed MenuState = iota // Initial
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Class tokens used to locate the navbar parts.
const (
	ToggleClass     = "nav-toggle"
	MobileMenuClass = "nav-mobile"
	DesktopClass    = "nav-desktop"
)

// Navbar is the fixed top navigation. It owns the mobile menu state.
type Navbar struct {
	runtime.ComponentBase

	// --- PROPS ---

	Brand string
	Links []content.NavLink
	CTA   content.NavLink

	// --- INTERNAL STATE ---

	menu MenuState
}

// ApplyProps takes new props and leaves the menu state alone.
func (n *Navbar) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Navbar); ok {
		n.Brand = src.Brand
		n.Links = src.Links
		n.CTA = src.CTA
	}
}

// Menu returns the current menu state.
func (n *Navbar) Menu() MenuState {
	return n.menu
}

// ToggleMenu is bound to the menu button's click.
func (n *Navbar) ToggleMenu() {
	if n.menu == MenuOpen {
		n.menu = MenuClosed
	} else {
		n.menu = MenuOpen
	}
	n.StateHasChanged()
}

// SelectLink is bound to the mobile links. Following a link always closes the menu.
func (n *Navbar) SelectLink() {
	n.menu = MenuClosed
	n.StateHasChanged()
}

func (n *Navbar) Render(r runtime.Renderer) *vdom.VNode {
	open := n.menu == MenuOpen

	glyph, expanded := "☰", "false"
	if open {
		glyph, expanded = "✕", "true"
	}

	bar := vdom.Div(map[string]any{"class": "flex justify-between items-center h-16"},
		vdom.Anchor("#", map[string]any{"class": "brand flex items-center gap-2"},
			vdom.Div(map[string]any{"class": "w-8 h-8 bg-gradient-to-br from-primary-600 to-blue-600 rounded-lg"}),
			vdom.Span(n.Brand, map[string]any{"class": "text-xl font-bold text-gray-900"}),
		),
		vdom.Div(map[string]any{"class": DesktopClass + " hidden md:flex items-center gap-8"},
			n.links(nil, "text-gray-700 hover:text-primary-600 font-medium")...,
		),
		vdom.Button(glyph, map[string]any{
			"class":         ToggleClass + " md:hidden p-2 rounded-lg hover:bg-gray-100",
			"aria-label":    "Toggle menu",
			"aria-expanded": expanded,
			"aria-controls": "mobile-menu",
			"onClick":       n.ToggleMenu,
		}),
	)

	children := []*vdom.VNode{bar}
	if open {
		children = append(children, vdom.Div(
			map[string]any{"id": "mobile-menu", "class": MobileMenuClass + " md:hidden py-4 border-t border-gray-200"},
			vdom.Div(map[string]any{"class": "flex flex-col gap-4"},
				n.links(n.SelectLink, "text-gray-700 hover:text-primary-600 font-medium px-2 py-2")...,
			),
		))
	}

	return vdom.Nav(map[string]any{"class": "navbar fixed top-0 left-0 right-0 z-50 bg-white/90 backdrop-blur-md border-b border-gray-200"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"}, children...),
	)
}

// links renders the navigation links followed by the call-to-action.
// onSelect, when set, is attached to every link.
func (n *Navbar) links(onSelect func(), class string) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(n.Links)+1)
	for _, l := range n.Links {
		out = append(out, navAnchor(l, class, onSelect))
	}
	if n.CTA.Name != "" {
		out = append(out, navAnchor(n.CTA, "nav-cta px-6 py-2 bg-primary-600 text-white rounded-lg font-semibold text-center", onSelect))
	}
	return out
}

func navAnchor(l content.NavLink, class string, onSelect func()) *vdom.VNode {
	attrs := map[string]any{"class": class}
	if onSelect != nil {
		attrs["onClick"] = onSelect
	}
	return vdom.Anchor(l.Href(), attrs, vdom.Text(l.Name))
}
