//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/sportselling/landing/console"
)

// supportedTags lists the element tags createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "button": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"main": true, "section": true, "article": true, "header": true, "footer": true,
	"nav": true, "aside": true, "a": true, "ul": true, "ol": true, "li": true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element and releases the listeners of the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount, ok := querySelector(selector)
	if !ok {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount, ok := querySelector(selector)
	if !ok {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// MountAttr reads an attribute from the mount element, returning "" when absent.
func MountAttr(selector, name string) string {
	mount, ok := querySelector(selector)
	if !ok {
		return ""
	}
	v := mount.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func querySelector(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// setAttributeValue sets an attribute on an element, handling boolean attributes.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		}
		return
	}

	el.Call("setAttribute", key, value)
}

// attachClick wires the node's OnClick handler and keeps the js.Func for release.
func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	handler := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.AddEventCallback(cb)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == "#text" {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachClick(el, n)

	// Setting textContent wipes children, so content only applies to leaf nodes.
	if len(n.Children) == 0 {
		if n.Content != "" {
			el.Set("textContent", n.Content)
		}
		return el
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount, ok := querySelector(mountSelector)
	if !ok {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if newElement.Truthy() {
		parent := domElement.Get("parentNode")
		if parent.Truthy() {
			parent.Call("replaceChild", newElement, domElement)
		}
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == "#text" {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Listeners are cheap to rebind; the old closures may capture stale state.
	releaseCallbacks(oldVNode)
	attachClick(domElement, newVNode)

	if len(newVNode.Children) == 0 {
		if len(oldVNode.Children) != 0 || oldVNode.Content != newVNode.Content {
			for _, c := range oldVNode.Children {
				deepReleaseCallbacks(c)
			}
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	if len(oldVNode.Children) == 0 && oldVNode.Content != "" {
		domElement.Set("textContent", "")
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		old, had := oldAttrs[key]
		if !had || old != value {
			if b, ok := value.(bool); ok && !b {
				domElement.Call("removeAttribute", key)
				continue
			}
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	// Remove from the end so earlier indexes stay valid.
	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
