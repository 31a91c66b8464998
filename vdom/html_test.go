//go:build !wasm
// +build !wasm

package vdom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// TestRenderHTML_SortedAttributes verifies that attributes are serialized in
// key order regardless of map iteration order.
func TestRenderHTML_SortedAttributes(t *testing.T) {
	node := Div(map[string]any{"id": "x", "class": "a b", "data-n": 3})

	got, err := HTMLString(node)
	if err != nil {
		t.Fatalf("HTMLString returned error: %v", err)
	}

	want := `<div class="a b" data-n="3" id="x"></div>`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestRenderHTML_BooleanAndHandlerAttributes verifies that true booleans are kept,
// false booleans are dropped and click handlers never reach the markup.
func TestRenderHTML_BooleanAndHandlerAttributes(t *testing.T) {
	clicked := false
	node := Button("Go", map[string]any{
		"disabled": true,
		"hidden":   false,
		"onClick":  func() { clicked = true },
	})

	if node.OnClick == nil {
		t.Fatalf("Expected onClick to be lifted into OnClick")
	}
	node.OnClick()
	if !clicked {
		t.Errorf("Expected OnClick to invoke the handler")
	}

	got, err := HTMLString(node)
	if err != nil {
		t.Fatalf("HTMLString returned error: %v", err)
	}

	if !strings.Contains(got, `disabled=""`) {
		t.Errorf("Expected bare disabled attribute in %q", got)
	}
	if strings.Contains(got, "hidden") || strings.Contains(got, "onClick") {
		t.Errorf("Unexpected attribute in %q", got)
	}
}

// TestNewVNode_DoesNotMutateAttributes verifies the caller's map is left intact.
func TestNewVNode_DoesNotMutateAttributes(t *testing.T) {
	attrs := map[string]any{"onClick": func() {}, "class": "btn"}

	NewVNode("button", attrs, nil, "")

	if _, ok := attrs["onClick"]; !ok {
		t.Errorf("Expected caller's onClick entry to remain in the map")
	}
}

// TestRenderHTML_EscapesText verifies that text content is escaped and parses back.
func TestRenderHTML_EscapesText(t *testing.T) {
	node := Div(nil,
		Paragraph("Fish & <Chips>", nil),
		Text("tail"),
	)

	got, err := HTMLString(node)
	if err != nil {
		t.Fatalf("HTMLString returned error: %v", err)
	}
	if !strings.Contains(got, "Fish &amp; &lt;Chips&gt;") {
		t.Errorf("Expected escaped text, got %q", got)
	}

	doc, err := html.Parse(strings.NewReader(got))
	if err != nil {
		t.Fatalf("Parsing rendered markup failed: %v", err)
	}

	var texts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			texts = append(texts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if strings.Join(texts, "|") != "Fish & <Chips>|tail" {
		t.Errorf("Unexpected text nodes after parse: %q", texts)
	}
}

// TestClassNames verifies empty tokens are skipped and order is preserved.
func TestClassNames(t *testing.T) {
	got := ClassNames("base  ", "", "  ", "mod extra")
	if got != "base mod extra" {
		t.Errorf("Expected 'base mod extra', got %q", got)
	}
}

// TestHeading_ClampsLevel verifies heading levels stay within h1..h6.
func TestHeading_ClampsLevel(t *testing.T) {
	if tag := Heading(0, nil).Tag; tag != "h1" {
		t.Errorf("Expected h1, got %s", tag)
	}
	if tag := Heading(9, nil).Tag; tag != "h6" {
		t.Errorf("Expected h6, got %s", tag)
	}
	if tag := Heading(3, nil).Tag; tag != "h3" {
		t.Errorf("Expected h3, got %s", tag)
	}
}

// TestVNode_QueryHelpers covers Attr, HasClass and TextContent.
func TestVNode_QueryHelpers(t *testing.T) {
	node := Div(map[string]any{"class": "card highlighted"},
		Span("Most ", nil),
		Div(nil, Text("Popular")),
	)

	if !node.HasClass("highlighted") || node.HasClass("high") {
		t.Errorf("HasClass matched incorrectly for %q", node.Attr("class"))
	}
	if got := node.TextContent(); got != "Most Popular" {
		t.Errorf("Expected 'Most Popular', got %q", got)
	}
	var nilNode *VNode
	if nilNode.Attr("class") != "" {
		t.Errorf("Expected empty attribute on nil node")
	}
}
