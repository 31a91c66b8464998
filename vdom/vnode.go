package vdom

import "strings"

// TextTag marks a pure text node with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler
	Key        string         // Identity of the component that produced this node, if any

	listeners []Listener // Subscriptions on the rendered element, detached on patch
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is lifted into OnClick so it never
// reaches the rendered attribute list. The caller's map is not modified.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	var attrs map[string]any
	if len(attributes) > 0 {
		attrs = make(map[string]any, len(attributes))
		for k, v := range attributes {
			if k == "onClick" {
				if f, ok := v.(func()); ok {
					onClick = f
					continue
				}
			}
			attrs[k] = v
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attrs,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// WithKey sets the component key and returns the node.
func (v *VNode) WithKey(key string) *VNode {
	v.Key = key
	return v
}

// Attr returns the string form of an attribute, or "" when missing.
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := attrString(v.Attributes[name])
	return s
}

// HasClass reports whether the class attribute contains the given token.
func (v *VNode) HasClass(token string) bool {
	for _, c := range strings.Fields(v.Attr("class")) {
		if c == token {
			return true
		}
	}
	return false
}

// TextContent concatenates the text of the node and all its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	v.writeText(&b)
	return b.String()
}

func (v *VNode) writeText(b *strings.Builder) {
	if v == nil {
		return
	}
	b.WriteString(v.Content)
	for _, c := range v.Children {
		c.writeText(b)
	}
}

// Listener is an event subscription on a rendered element.
// Detach must unsubscribe it from the element before freeing it.
type Listener interface {
	Detach()
}

// AddListener records a subscription made for this node's element.
func (v *VNode) AddListener(l Listener) {
	v.listeners = append(v.listeners, l)
}

// Listeners returns the recorded subscriptions.
func (v *VNode) Listeners() []Listener {
	return v.listeners
}

// DetachListeners detaches every recorded subscription and forgets them,
// so a second call does nothing.
func (v *VNode) DetachListeners() {
	if v == nil {
		return
	}
	for _, l := range v.listeners {
		l.Detach()
	}
	v.listeners = nil
}

// presentChildren returns children without nil entries. Nil children render
// nothing, so DOM child positions follow this slice, not Children.
func presentChildren(children []*VNode) []*VNode {
	for _, c := range children {
		if c == nil {
			out := make([]*VNode, 0, len(children))
			for _, c := range children {
				if c != nil {
					out = append(out, c)
				}
			}
			return out
		}
	}
	return children
}

// ClassNames joins class tokens, skipping empty ones. Later tokens are
// appended after earlier ones, so a modifier never replaces a base class.
func ClassNames(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Text creates a pure text node.
func Text(content string) *VNode {
	return &VNode{Tag: TextTag, Content: content}
}

// Element creates a VNode for an arbitrary tag.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <hN> VNode. Levels outside 1..6 are clamped.
func Heading(level int, attrs map[string]any, children ...*VNode) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, children, "")
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Anchor creates an <a> VNode pointing at href.
func Anchor(href string, attrs map[string]any, children ...*VNode) *VNode {
	merged := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		merged[k] = v
	}
	merged["href"] = href
	return NewVNode("a", merged, children, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Section creates a <section> VNode.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

// Nav creates a <nav> VNode.
func Nav(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("nav", attrs, children, "")
}

// Main creates a <main> VNode.
func Main(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("main", attrs, children, "")
}

// List creates a <ul> VNode.
func List(attrs map[string]any, items ...*VNode) *VNode {
	return NewVNode("ul", attrs, items, "")
}

// ListItem creates an <li> VNode.
func ListItem(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}

// Button creates a <button> VNode with the given content or children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
