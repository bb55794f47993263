// Package content holds the copy displayed on the landing page.
//
// The catalog is a single static table, not a translation system: there is
// one language and no runtime lookup by locale.
package content

// Catalog is every string the landing page displays.
type Catalog struct {
	Welcome     Welcome
	Hero        Hero
	Marketplace Marketplace
	CTA         string
}

// Welcome is the copy of the timed welcome modal.
type Welcome struct {
	Title       string
	Description string
}

// Hero is the copy of the top section.
type Hero struct {
	Headline    string
	Subheadline string
}

// Marketplace is the preview grid: a header and an ordered list of cards.
type Marketplace struct {
	Title    string
	Subtitle string
	Cards    []Card
}

// Card is one preview tile in the marketplace grid.
type Card struct {
	Tag         string
	Title       string
	Description string
}

var home = Catalog{
	Welcome: Welcome{
		Title:       "Welcome to Sportselling",
		Description: "We are building a trusted marketplace for sports memorabilia collectors. Explore previews of our upcoming experience and stay tuned for the launch!",
	},
	Hero: Hero{
		Headline:    "Collect, trade, and celebrate sports history",
		Subheadline: "Our marketplace will connect passionate collectors with exclusive memorabilia from athletes, teams, and legendary moments.",
	},
	Marketplace: Marketplace{
		Title:    "Marketplace Preview",
		Subtitle: "A glimpse at the categories that will be available when we go live.",
		Cards: []Card{
			{
				Tag:         "Featured",
				Title:       "Signed Jerseys",
				Description: "Authentic, certified jerseys from iconic athletes across basketball, football, baseball, and more.",
			},
			{
				Tag:         "Coming Soon",
				Title:       "Game-Used Gear",
				Description: "Shoes, balls, bats, and equipment with verifiable provenance direct from the field or court.",
			},
			{
				Tag:         "Community",
				Title:       "Collector Spotlights",
				Description: "Stories from our founding members, tips for preserving memorabilia, and exclusive interviews.",
			},
			{
				Tag:         "Placeholder",
				Title:       "Create Your Listing",
				Description: "Reserve your spot to sell rare items. Listing tools and secure payments will arrive at launch.",
			},
		},
	},
	CTA: "Notify Me",
}

// Home returns the landing page catalog. Each call hands out its own copy of
// the card list, so callers cannot alter what later callers see.
func Home() Catalog {
	c := home
	c.Marketplace.Cards = append([]Card(nil), home.Marketplace.Cards...)
	return c
}
