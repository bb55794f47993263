//go:build js || wasm
// +build js wasm

package runtime

import (
	"sync"

	"github.com/sportselling/landing/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	mu        sync.Mutex
	rendering bool // a render cycle is running
	dirty     bool // ReRender was requested while rendering

	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component
	currentKey       string
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a new runtime renderer mounting into the element matched by mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mountID:     mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
// Replacing an existing root destroys it and every child it rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && r.currentComponent != comp {
		r.destroyAll()
		r.prevVDOM = nil
	}
	r.currentComponent = comp
	r.currentKey = key
}

// ReRender runs a render cycle. Requests made while a cycle is running
// (for example a timer callback landing mid-render) are coalesced into one
// extra pass rather than re-entering the renderer.
func (r *RendererImpl) ReRender() {
	r.mu.Lock()
	if r.rendering {
		r.dirty = true
		r.mu.Unlock()
		return
	}
	r.rendering = true
	r.mu.Unlock()

	for {
		r.renderRoot()

		r.mu.Lock()
		if !r.dirty {
			r.rendering = false
			r.mu.Unlock()
			return
		}
		r.dirty = false
		r.mu.Unlock()
	}
}

// renderRoot builds the tree from the current component and reconciles the DOM.
func (r *RendererImpl) renderRoot() {
	if r.currentComponent == nil {
		return
	}

	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)

	if !r.initialized[rootKey] {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)
	if newVDOM != nil {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance already living under key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := !exists

	// Children are stateless: the value passed in carries all of their props,
	// so it replaces the stored instance while the key keeps its identity.
	if instance != childWithProps {
		instance = childWithProps
		r.instances[key] = instance
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	n := instance.Render(r)
	if n != nil {
		n.ComponentKey = key
	}
	return n
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				r.callOnDestroy(cleaner, key)
			}

			delete(r.instances, key)
			delete(r.initialized, key)
		}
	}
}

// Unmount tears down the whole tree: every child and the root get OnDestroy,
// and the mount element is emptied.
func (r *RendererImpl) Unmount() {
	r.destroyAll()
	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
	r.currentComponent = nil
}

func (r *RendererImpl) destroyAll() {
	r.activeKeys = make(map[string]bool)
	r.cleanupUnmountedComponents()

	if r.currentComponent != nil && r.initialized[rootKey] {
		if cleaner, ok := r.currentComponent.(Cleaner); ok {
			r.callOnDestroy(cleaner, rootKey)
		}
	}
	delete(r.initialized, rootKey)
}
