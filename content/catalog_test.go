package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_CardOrder(t *testing.T) {
	cards := Home().Marketplace.Cards

	require.Len(t, cards, 4)
	var tags []string
	for _, c := range cards {
		tags = append(tags, c.Tag)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, []string{"Featured", "Coming Soon", "Community", "Placeholder"}, tags)
}

func TestHome_Copy(t *testing.T) {
	c := Home()

	assert.Equal(t, "Welcome to Sportselling", c.Welcome.Title)
	assert.Equal(t, "Collect, trade, and celebrate sports history", c.Hero.Headline)
	assert.Equal(t, "Marketplace Preview", c.Marketplace.Title)
	assert.Equal(t, "Notify Me", c.CTA)
}

func TestHome_ReturnsIndependentCopies(t *testing.T) {
	first := Home()
	first.Marketplace.Cards[0].Title = "Mutated"
	first.Marketplace.Cards = first.Marketplace.Cards[:1]

	second := Home()

	require.Len(t, second.Marketplace.Cards, 4)
	assert.Equal(t, "Signed Jerseys", second.Marketplace.Cards[0].Title)
}
