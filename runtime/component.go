package runtime

import "github.com/sportselling/landing/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need to run setup once,
// before their first render. Timers and subscriptions are armed here.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from
// their props. It runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components holding resources that must be
// released when they leave the tree: pending timers, subscriptions.
type Cleaner interface {
	OnDestroy()
}
