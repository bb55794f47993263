package landing

import (
	"github.com/sportselling/landing/content"
	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/vdom"
)

// MarketplaceHeadingID labels the marketplace section.
const MarketplaceHeadingID = "marketplace-heading"

// Marketplace renders the preview grid, one Card per entry, in order.
type Marketplace struct {
	runtime.ComponentBase

	Title    string
	Subtitle string
	Cards    []content.Card
}

func (m *Marketplace) Render(r runtime.Renderer) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(m.Cards))
	for _, c := range m.Cards {
		cards = append(cards, r.RenderChild("card-"+c.Title, &Card{Card: c}))
	}

	return vdom.Section(map[string]any{"class": "marketplace", "aria-labelledby": MarketplaceHeadingID},
		vdom.Div(map[string]any{"class": "marketplace__header"},
			vdom.H2(m.Title, map[string]any{"id": MarketplaceHeadingID}),
			vdom.Paragraph(m.Subtitle, nil),
		),
		vdom.Div(map[string]any{"class": "marketplace__grid"}, cards...),
	)
}

// Card is a single preview tile.
type Card struct {
	runtime.ComponentBase
	content.Card
}

func (c *Card) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Article(map[string]any{"class": "marketplace__card", "data-key": c.Title},
		vdom.Span(c.Tag, map[string]any{"class": "marketplace__tag"}),
		vdom.H3(c.Title, map[string]any{"class": "marketplace__title"}),
		vdom.Paragraph(c.Description, map[string]any{"class": "marketplace__description"}),
	)
}
