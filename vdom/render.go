//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-landing/console"
)

// domListener is a js.Func subscribed to one event on one element.
type domListener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Detach unsubscribes the function before releasing it, so the element never
// holds a released function.
func (l domListener) Detach() {
	l.target.Call("removeEventListener", l.event, l.fn)
	l.fn.Release()
}

// deepReleaseCallbacks detaches every listener in the VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	v.DetachListeners()

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element. Callbacks held by prevVDOM are released first.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	val, ok := attrString(value)
	if !ok {
		return
	}
	el.Call("setAttribute", key, val)
}

// attachClick wires the node's OnClick handler and records the listener for detaching.
func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}

	handler := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.AddListener(domListener{target: el, event: "click", fn: cb})
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachClick(el, n)

	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}

	for _, child := range presentChildren(n.Children) {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// A different component key means a different instance: replace the subtree.
	if oldVNode.Key != newVNode.Key || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	// Text content shares the child list with element children, so a change
	// in either is handled by a full replacement of this element.
	if oldVNode.Content != newVNode.Content {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	oldVNode.DetachListeners()
	attachClick(domElement, newVNode)

	offset := 0
	if newVNode.Content != "" {
		offset = 1
	}
	patchChildren(domElement, presentChildren(oldVNode.Children), presentChildren(newVNode.Children), offset)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		old, had := oldAttrs[key]
		if had && old == value {
			continue
		}
		if _, ok := attrString(value); !ok {
			domElement.Call("removeAttribute", key)
			continue
		}
		setAttributeValue(domElement, key, value)
	}
}

// patchChildren updates the children of a DOM element. Both slices must be
// free of nil entries so positions match the DOM. offset skips leading DOM
// nodes that belong to the element's own text content.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode, offset int) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i+offset)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i+offset)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
