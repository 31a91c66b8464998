package testcomponents

import "github.com/vcrobe/nojs-landing/vdom"

// FindFirst returns the first node, in document order, matching pred.
func FindFirst(root *vdom.VNode, pred func(*vdom.VNode) bool) *vdom.VNode {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	for _, c := range root.Children {
		if found := FindFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node, in document order, matching pred.
func FindAll(root *vdom.VNode, pred func(*vdom.VNode) bool) []*vdom.VNode {
	var out []*vdom.VNode
	var walk func(n *vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if pred(n) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// ByID matches nodes whose id attribute equals id.
func ByID(id string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Attr("id") == id }
}

// ByClass matches nodes whose class list contains token.
func ByClass(token string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.HasClass(token) }
}

// ByTag matches nodes with the given tag.
func ByTag(tag string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}
