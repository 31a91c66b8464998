package runtime

import "github.com/vcrobe/nojs-landing/vdom"

// Compile-time assertion to ensure StaticRenderer implements the Renderer interface.
var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer renders a component tree to VNodes without a browser.
// It keeps keyed instances between cycles exactly like the DOM renderer,
// which makes it suitable for server-side prerendering and tests.
type StaticRenderer struct {
	tree    *instanceTree
	root    Component
	current *vdom.VNode
}

// NewStaticRenderer creates a static renderer for root.
func NewStaticRenderer(root Component) *StaticRenderer {
	return &StaticRenderer{
		tree: newInstanceTree(),
		root: root,
	}
}

// RenderRoot performs a full render cycle and returns the resulting tree.
func (r *StaticRenderer) RenderRoot() *vdom.VNode {
	r.current = r.tree.renderRoot(r, r.root)
	return r.current
}

// ReRender re-runs the render cycle. Called by StateHasChanged().
func (r *StaticRenderer) ReRender() {
	r.RenderRoot()
}

// RenderChild renders a keyed child component.
func (r *StaticRenderer) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.renderChild(r, key, childWithProps)
}

// Current returns the most recently rendered tree.
func (r *StaticRenderer) Current() *vdom.VNode {
	return r.current
}

// Instance returns the live component stored under key.
func (r *StaticRenderer) Instance(key string) (Component, bool) {
	return r.tree.instance(key)
}
