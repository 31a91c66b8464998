package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-landing/vdom"
)

func TestOptionalPresence(t *testing.T) {
	var zero Optional[string]
	assert.False(t, zero.IsSet())

	empty := Some("")
	v, ok := empty.Get()
	assert.True(t, ok, "an empty string is still present")
	assert.Equal(t, "", v)

	assert.False(t, None[int]().IsSet())
	assert.Equal(t, 7, None[int]().OrElse(7))
	assert.Equal(t, 3, Some(3).OrElse(7))
}

func TestMarkerVariants(t *testing.T) {
	sym := Symbol("🚀")
	assert.Equal(t, SymbolMarker, sym.Kind())
	assert.Equal(t, "🚀", sym.SymbolText())
	assert.Nil(t, sym.Node())

	node := vdom.Span("Most Popular", nil)
	el := Element(node)
	assert.Equal(t, ElementMarker, el.Kind())
	assert.Same(t, node, el.Node())
}

func TestLiteralSequencesHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Features {
		require.False(t, seen[f.ID], "duplicate feature id %s", f.ID)
		seen[f.ID] = true
	}
	require.Len(t, Features, 6)
	require.Len(t, Plans, 3)
	require.Len(t, Testimonials, 3)

	highlighted := 0
	for _, p := range Plans {
		if p.Highlighted {
			highlighted++
			assert.Equal(t, "Pro", p.Name)
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestNavLinkHref(t *testing.T) {
	assert.Equal(t, "#pricing", GetStarted.Href())
	for _, l := range NavLinks {
		assert.Equal(t, "#"+l.Anchor, l.Href())
	}
}
