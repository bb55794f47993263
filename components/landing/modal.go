package landing

import (
	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/vdom"
)

const (
	// WelcomeTitleID is the id of the modal heading, referenced by aria-labelledby.
	WelcomeTitleID = "welcome-title"

	// CloseLabel is the accessible name of the dismiss button.
	CloseLabel = "Close welcome message"
)

// WelcomeModal is the dialog shown once per view after the reveal delay.
type WelcomeModal struct {
	runtime.ComponentBase

	// --- PROPS ---

	Title       string
	Description string

	// OnClose is called when the dismiss button is activated. The parent
	// removes the modal from its tree in response.
	OnClose func()
}

// HandleClose is bound to the dismiss button.
func (m *WelcomeModal) HandleClose() {
	if m.OnClose != nil {
		m.OnClose()
	}
}

func (m *WelcomeModal) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "modal-backdrop", "role": "presentation"},
		vdom.Div(map[string]any{
			"class":           "modal",
			"role":            "dialog",
			"aria-modal":      "true",
			"aria-labelledby": WelcomeTitleID,
		},
			vdom.H2(m.Title, map[string]any{"id": WelcomeTitleID}),
			vdom.Paragraph(m.Description, nil),
			vdom.Button("Close", map[string]any{
				"type":       "button",
				"aria-label": CloseLabel,
				"onClick":    m.HandleClose,
			}),
		),
	)
}
