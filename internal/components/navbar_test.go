//go:build !wasm
// +build !wasm

package components

import (
	"testing"

	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/testcomponents"
	"github.com/vcrobe/nojs-landing/vdom"
)

func newNavbar() *Navbar {
	return &Navbar{Brand: content.Brand, Links: content.NavLinks, CTA: content.GetStarted}
}

func clickToggle(t *testing.T, root *vdom.VNode) {
	t.Helper()
	btn := testcomponents.FindFirst(root, testcomponents.ByClass(ToggleClass))
	if btn == nil || btn.OnClick == nil {
		t.Fatalf("Expected a toggle button with a click handler")
	}
	btn.OnClick()
}

// TestNavbar_InitiallyClosed verifies the menu starts closed and hidden.
func TestNavbar_InitiallyClosed(t *testing.T) {
	// Arrange
	nav := newNavbar()
	renderer := testcomponents.NewTestRenderer(nav)

	// Act
	vnode := renderer.RenderRoot()

	// Assert
	if nav.Menu() != MenuClosed {
		t.Errorf("Expected initial state closed, got %s", nav.Menu())
	}
	if testcomponents.FindFirst(vnode, testcomponents.ByClass(MobileMenuClass)) != nil {
		t.Errorf("Expected no mobile menu while closed")
	}
	btn := testcomponents.FindFirst(vnode, testcomponents.ByClass(ToggleClass))
	if btn.Attr("aria-expanded") != "false" {
		t.Errorf("Expected aria-expanded=false, got %q", btn.Attr("aria-expanded"))
	}

	desktop := testcomponents.FindFirst(vnode, testcomponents.ByClass(DesktopClass))
	if len(desktop.Children) != len(content.NavLinks)+1 {
		t.Errorf("Expected %d desktop links, got %d", len(content.NavLinks)+1, len(desktop.Children))
	}
}

// TestNavbar_ToggleOpensMenu verifies one toggle opens the menu and re-renders.
func TestNavbar_ToggleOpensMenu(t *testing.T) {
	nav := newNavbar()
	renderer := testcomponents.NewTestRenderer(nav)
	vnode := renderer.RenderRoot()

	clickToggle(t, vnode)

	if nav.Menu() != MenuOpen {
		t.Fatalf("Expected open after one toggle, got %s", nav.Menu())
	}
	updated := renderer.GetCurrentVDOM()
	menu := testcomponents.FindFirst(updated, testcomponents.ByClass(MobileMenuClass))
	if menu == nil {
		t.Fatalf("Expected the mobile menu to be rendered while open")
	}
	links := testcomponents.FindAll(menu, testcomponents.ByTag("a"))
	if len(links) != len(content.NavLinks)+1 {
		t.Errorf("Expected %d mobile links, got %d", len(content.NavLinks)+1, len(links))
	}
	btn := testcomponents.FindFirst(updated, testcomponents.ByClass(ToggleClass))
	if btn.Attr("aria-expanded") != "true" {
		t.Errorf("Expected aria-expanded=true, got %q", btn.Attr("aria-expanded"))
	}
}

// TestNavbar_SelectingLinkCloses verifies any mobile link closes the open menu.
func TestNavbar_SelectingLinkCloses(t *testing.T) {
	for i := 0; i <= len(content.NavLinks); i++ {
		nav := newNavbar()
		renderer := testcomponents.NewTestRenderer(nav)
		clickToggle(t, renderer.RenderRoot())

		menu := testcomponents.FindFirst(renderer.GetCurrentVDOM(), testcomponents.ByClass(MobileMenuClass))
		link := testcomponents.FindAll(menu, testcomponents.ByTag("a"))[i]
		if link.OnClick == nil {
			t.Fatalf("Link %d: expected a click handler", i)
		}
		link.OnClick()

		if nav.Menu() != MenuClosed {
			t.Errorf("Link %d: expected closed after selecting, got %s", i, nav.Menu())
		}
		if testcomponents.FindFirst(renderer.GetCurrentVDOM(), testcomponents.ByClass(MobileMenuClass)) != nil {
			t.Errorf("Link %d: expected the mobile menu to be gone", i)
		}
	}
}

// TestNavbar_ToggleTwiceCloses verifies the toggle flips between the two states.
func TestNavbar_ToggleTwiceCloses(t *testing.T) {
	nav := newNavbar()
	renderer := testcomponents.NewTestRenderer(nav)
	renderer.RenderRoot()

	nav.ToggleMenu()
	nav.ToggleMenu()

	if nav.Menu() != MenuClosed {
		t.Errorf("Expected closed after two toggles, got %s", nav.Menu())
	}
}

// TestNavbar_DesktopLinksDoNotTouchState verifies desktop links carry no handler.
func TestNavbar_DesktopLinksDoNotTouchState(t *testing.T) {
	renderer := testcomponents.NewTestRenderer(newNavbar())

	vnode := renderer.RenderRoot()

	desktop := testcomponents.FindFirst(vnode, testcomponents.ByClass(DesktopClass))
	for _, a := range desktop.Children {
		if a.OnClick != nil {
			t.Errorf("Expected no click handler on desktop link %q", a.TextContent())
		}
	}
}

func TestMenuState_String(t *testing.T) {
	if MenuClosed.String() != "closed" || MenuOpen.String() != "open" {
		t.Errorf("Unexpected names %q, %q", MenuClosed, MenuOpen)
	}
}
