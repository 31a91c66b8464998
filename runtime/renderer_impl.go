//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/vcrobe/nojs-landing/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl renders into the browser DOM under a mount selector.
// The first cycle replaces whatever the mount holds (e.g. prerendered markup);
// later cycles patch the existing DOM.
type RendererImpl struct {
	tree             *instanceTree
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode
}

// NewRenderer creates a new runtime renderer mounted at mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		tree:    newInstanceTree(),
		mountID: mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	newVDOM := r.tree.renderRoot(r, r.currentComponent)
	if newVDOM == nil {
		return
	}

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM
}

// RenderChild renders a keyed child component, reusing its previous instance.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.renderChild(r, key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
