package runtime

import "github.com/sportselling/landing/vdom"

// Compile-time assertion to ensure StaticRenderer implements the Renderer interface.
var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer produces a one-off snapshot of a component tree. It never
// invokes lifecycle hooks, so nothing is scheduled and nothing needs tearing
// down: the snapshot is exactly what a freshly created component looks like.
// The prerender server uses it to emit HTML before WASM takes over.
type StaticRenderer struct{}

// NewStaticRenderer returns a renderer for snapshots.
func NewStaticRenderer() *StaticRenderer {
	return &StaticRenderer{}
}

// Render attaches the renderer to comp and returns its tree.
func (r *StaticRenderer) Render(comp Component) *vdom.VNode {
	comp.SetRenderer(r)
	return comp.Render(r)
}

// RenderChild renders the child in place; there is no instance to reuse.
func (r *StaticRenderer) RenderChild(key string, child Component) *vdom.VNode {
	child.SetRenderer(r)
	n := child.Render(r)
	if n != nil {
		n.ComponentKey = key
	}
	return n
}

// ReRender is a no-op: a snapshot has no live DOM to patch.
func (r *StaticRenderer) ReRender() {}
