// Package ssr turns component output into gomponents nodes so the server can
// send the first paint as plain HTML.
package ssr

import (
	"fmt"
	"sort"

	g "maragu.dev/gomponents"

	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/vdom"
)

// Render snapshots comp with a static renderer and converts the result.
// Lifecycle hooks do not run, so the output is the component's initial state.
func Render(comp runtime.Component) g.Node {
	return Node(runtime.NewStaticRenderer().Render(comp))
}

// Node converts a VNode tree. Attributes are emitted in name order so output
// is stable across runs. Click handlers have no HTML form and are dropped.
func Node(n *vdom.VNode) g.Node {
	if n == nil {
		return g.Group(nil)
	}
	if n.Tag == "#text" {
		return g.Text(n.Content)
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make([]g.Node, 0, len(keys)+len(n.Children)+1)
	for _, k := range keys {
		switch v := n.Attributes[k].(type) {
		case bool:
			if v {
				nodes = append(nodes, g.Attr(k))
			}
		case string:
			nodes = append(nodes, g.Attr(k, v))
		case func(), nil:
		default:
			nodes = append(nodes, g.Attr(k, fmt.Sprint(v)))
		}
	}

	if len(n.Children) == 0 {
		if n.Content != "" {
			nodes = append(nodes, g.Text(n.Content))
		}
	} else {
		for _, c := range n.Children {
			nodes = append(nodes, Node(c))
		}
	}

	return g.El(n.Tag, nodes...)
}
