package vdom

import "strings"

// Walk visits n and its descendants depth-first, in document order.
// Returning false from fn stops the walk.
func Walk(n *VNode, fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in document order matching pred, or nil.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred, in document order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByAttr matches nodes whose attribute key equals value.
func ByAttr(key, value string) func(*VNode) bool {
	return func(n *VNode) bool { return n.Attr(key) == value }
}

// ByClass matches nodes carrying class in their class list.
func ByClass(class string) func(*VNode) bool {
	return func(n *VNode) bool {
		for _, c := range strings.Fields(n.Attr("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// TextContent concatenates the content of n and all its descendants.
func TextContent(n *VNode) string {
	var b strings.Builder
	Walk(n, func(v *VNode) bool {
		b.WriteString(v.Content)
		return true
	})
	return b.String()
}
