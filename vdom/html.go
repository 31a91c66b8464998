package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts a VNode tree into an x/net/html node tree.
// Attributes are emitted in sorted order so the output is deterministic.
// Event handlers never reach the markup. Returns nil for a nil node.
func ToHTML(v *VNode) *html.Node {
	if v == nil {
		return nil
	}

	if v.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: v.Content}
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     v.Tag,
		DataAtom: atom.Lookup([]byte(v.Tag)),
		Attr:     htmlAttributes(v.Attributes),
	}

	if v.Content != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: v.Content})
	}
	for _, child := range presentChildren(v.Children) {
		n.AppendChild(ToHTML(child))
	}
	return n
}

// RenderHTML serializes the VNode tree as HTML to w.
func RenderHTML(w io.Writer, v *VNode) error {
	n := ToHTML(v)
	if n == nil {
		return nil
	}
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("rendering %s: %w", v.Tag, err)
	}
	return nil
}

// HTMLString serializes the VNode tree and returns the markup.
func HTMLString(v *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		val, ok := attrString(attrs[k])
		if !ok {
			continue
		}
		out = append(out, html.Attribute{Key: k, Val: val})
	}
	return out
}

// attrString converts an attribute value to its markup form.
// Boolean true renders as a bare attribute, false and functions are skipped.
func attrString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return "", v
	case func(), func(any):
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}
