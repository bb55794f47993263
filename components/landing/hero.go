package landing

import (
	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/vdom"
)

// Hero is the top section: headline, subheadline and the call-to-action.
// The CTA is a visual affordance only and has no click handler.
type Hero struct {
	runtime.ComponentBase

	Headline    string
	Subheadline string
	CTA         string
}

func (h *Hero) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Section(map[string]any{"class": "hero"},
		vdom.H1(h.Headline, nil),
		vdom.Paragraph(h.Subheadline, nil),
		vdom.Button(h.CTA, map[string]any{"type": "button"}),
	)
}
