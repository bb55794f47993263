package ssr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/sportselling/landing/components/landing"
	"github.com/sportselling/landing/vdom"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestNode_Markup(t *testing.T) {
	tree := vdom.Div(map[string]any{"class": "modal", "aria-modal": "true", "hidden": false, "open": true, "data-n": 3},
		vdom.H2("Title", map[string]any{"id": "welcome-title"}),
		vdom.Button("Close", map[string]any{"type": "button", "onClick": func() {}}),
		vdom.NewVNode("#text", nil, nil, "tail"),
	)

	got := render(t, Node(tree))

	assert.Equal(t,
		`<div aria-modal="true" class="modal" data-n="3" open><h2 id="welcome-title">Title</h2><button type="button">Close</button>tail</div>`,
		got)
}

func TestNode_EscapesText(t *testing.T) {
	got := render(t, Node(vdom.Paragraph(`<script>alert("x")</script> & more`, map[string]any{"title": `a"b`})))

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "&amp; more")
	assert.Contains(t, got, `title="a&#34;b"`)
}

func TestNode_Nil(t *testing.T) {
	assert.Equal(t, "", render(t, Node(nil)))
}

func TestRender_LandingInitialState(t *testing.T) {
	view := landing.New()

	got := render(t, Render(view))

	assert.Equal(t, 4, strings.Count(got, `class="marketplace__card"`))
	assert.Less(t, strings.Index(got, "Featured"), strings.Index(got, "Coming Soon"))
	assert.Less(t, strings.Index(got, "Coming Soon"), strings.Index(got, "Community"))
	assert.Less(t, strings.Index(got, "Community"), strings.Index(got, "Placeholder"))
	assert.NotContains(t, got, `role="dialog"`)
	assert.Contains(t, got, `<h1>Collect, trade, and celebrate sports history</h1>`)
	assert.False(t, view.ModalVisible())
}
