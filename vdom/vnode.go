package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, or "#text" for a bare text node
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // The text content of the node
	OnClick      func()         // Optional click event handler
	ComponentKey string         // Set on the root node of a mounted component

	eventCallbacks []any // js.Func values attached to the live element
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is lifted into OnClick so it never
// reaches the DOM as an attribute. Nil children are dropped, which lets
// conditional blocks be written inline.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   compact(children),
		Content:    content,
		OnClick:    onClick,
	}
}

func compact(children []*VNode) []*VNode {
	if len(children) == 0 {
		return nil
	}
	out := make([]*VNode, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Attr returns an attribute as a string, or "" when it is absent or not a string.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[key].(string)
	return s
}

// AddEventCallback stores a listener handle so it can be released later.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the listener handles attached to this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets every stored listener handle.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Paragraph creates a <p> VNode with the given text as its content and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

func Main(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("main", attrs, children, "")
}

func Section(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

func Article(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("article", attrs, children, "")
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode holding text. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

func H1(text string, attrs map[string]any) *VNode { return Heading(1, text, attrs) }
func H2(text string, attrs map[string]any) *VNode { return Heading(2, text, attrs) }
func H3(text string, attrs map[string]any) *VNode { return Heading(3, text, attrs) }

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
