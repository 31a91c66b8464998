package components

import (
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// FeatureCardClass is the modifier applied to every feature card.
const FeatureCardClass = "border border-gray-100 hover:border-primary-200"

// Features renders the feature grid.
type Features struct {
	runtime.ComponentBase
	Records []content.Record
}

func (f *Features) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Features); ok {
		f.Records = src.Records
	}
}

func (f *Features) Render(r runtime.Renderer) *vdom.VNode {
	return sectionBlock(content.AnchorFeatures, "bg-white", content.FeaturesHeader,
		Grid(r, content.AnchorFeatures, RecordCards(f.Records, FeatureCardClass)),
	)
}
