// Package ast models a typed document tree for scientific documents and
// renders it to LaTeX, Markdown, plain copy text and JSON. Rendering can
// optionally record per-node character spans, which the match package uses
// to map text excerpts back to the nodes that produced them.
package ast

import "github.com/google/uuid"

// Role classifies a child within its container. Containers that carry a
// heading (sections, theorem environments, list items) render their title
// children before their content children regardless of insertion order.
type Role string

const (
	RoleNone    Role = ""
	RoleTitle   Role = "title"
	RoleContent Role = "content"
)

// Style is a textual decoration applied to leaf text.
type Style string

const (
	StyleBold          Style = "bold"
	StyleItalic        Style = "italic"
	StyleUnderline     Style = "underline"
	StyleStrikethrough Style = "strikethrough"
	StyleSuperscript   Style = "superscript"
	StyleSubscript     Style = "subscript"
	StyleMonospace     Style = "monospace"
)

// Node is one element of the document tree. Concrete kinds implement the
// per-format render methods; child traversal and block separators are owned
// by Render, which node implementations call back into for their children.
type Node interface {
	// ID returns the stable identifier, unique within a tree.
	ID() string

	// Kind returns the node kind. Immutable after construction.
	Kind() Kind

	// Role returns the node's role within its parent.
	Role() Role

	// SetRole changes the node's role within its parent.
	SetRole(role Role)

	// Parent returns the owning node, or nil for roots.
	Parent() Node

	// Children returns the owned children in document order.
	Children() []Node

	// Append adds children to the end of the child list, re-parenting them.
	Append(children ...Node)

	// Remove detaches a direct child. Returns false if it is not a child.
	Remove(child Node) bool

	// Labels returns the cross-reference anchors attached to this node.
	Labels() []string

	// AddLabel attaches a cross-reference anchor.
	AddLabel(label string)

	// Styles returns the textual decorations applied to this node.
	Styles() []Style

	// Inline reports whether the node renders inline. Block-level nodes get
	// a block separator inserted before them by Render.
	Inline() bool

	// LaTeX renders the node to LaTeX.
	LaTeX(o *Options) string

	// Markdown renders the node to Markdown.
	Markdown(o *Options) string

	// CopyText renders the node to plain copy text without markup.
	CopyText(o *Options) string

	// Data converts the node back to its tagged source form.
	Data() NodeData

	setParent(parent Node)
}

// BaseNode implements the identity, ownership and label bookkeeping shared
// by every node kind. Concrete kinds embed it and call init from their
// constructor.
type BaseNode struct {
	self     Node
	id       string
	kind     Kind
	role     Role
	parent   Node
	children []Node
	labels   []string
	styles   []Style
}

func (b *BaseNode) init(self Node, id string, kind Kind) {
	if id == "" {
		id = uuid.NewString()
	}
	b.self = self
	b.id = id
	b.kind = kind
}

// ID returns the stable identifier.
func (b *BaseNode) ID() string { return b.id }

// Kind returns the node kind.
func (b *BaseNode) Kind() Kind { return b.kind }

// Role returns the node's role within its parent.
func (b *BaseNode) Role() Role { return b.role }

// SetRole changes the node's role within its parent.
func (b *BaseNode) SetRole(role Role) { b.role = role }

// Parent returns the owning node, or nil for roots.
func (b *BaseNode) Parent() Node { return b.parent }

// Children returns the owned children in document order.
func (b *BaseNode) Children() []Node { return b.children }

// Append adds children to the end of the child list, re-parenting them.
// A child already owned elsewhere must be removed from its old parent first;
// nodes are never shared between two parents.
func (b *BaseNode) Append(children ...Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.setParent(b.self)
		b.children = append(b.children, c)
	}
}

// Remove detaches a direct child. Returns false if it is not a child.
func (b *BaseNode) Remove(child Node) bool {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.setParent(nil)
			return true
		}
	}
	return false
}

// Labels returns the cross-reference anchors attached to this node.
func (b *BaseNode) Labels() []string { return b.labels }

// AddLabel attaches a cross-reference anchor.
func (b *BaseNode) AddLabel(label string) { b.labels = append(b.labels, label) }

// Styles returns the textual decorations applied to this node.
func (b *BaseNode) Styles() []Style { return b.styles }

// SetStyles replaces the textual decorations applied to this node.
func (b *BaseNode) SetStyles(styles []Style) { b.styles = styles }

// Inline reports whether the node renders inline, derived from its kind.
// Equations override this based on their display mode.
func (b *BaseNode) Inline() bool { return b.kind.Inline() }

func (b *BaseNode) setParent(parent Node) { b.parent = parent }

// LaTeX renders the children; container kinds without markup of their own
// inherit this.
func (b *BaseNode) LaTeX(o *Options) string { return Render(b.children, FormatLaTeX, o) }

// Markdown renders the children.
func (b *BaseNode) Markdown(o *Options) string { return Render(b.children, FormatMarkdown, o) }

// CopyText renders the children.
func (b *BaseNode) CopyText(o *Options) string { return Render(b.children, FormatCopyText, o) }

// Data converts the shared fields back to tagged source form.
func (b *BaseNode) Data() NodeData { return b.baseData() }

func (b *BaseNode) baseData() NodeData {
	d := NodeData{
		ID:     b.id,
		Kind:   string(b.kind),
		Role:   string(b.role),
		Labels: b.labels,
	}
	for _, s := range b.styles {
		d.Styles = append(d.Styles, string(s))
	}
	for _, c := range b.children {
		d.Children = append(d.Children, c.Data())
	}
	return d
}

// titleChildren returns the children carrying RoleTitle.
func (b *BaseNode) titleChildren() []Node {
	var out []Node
	for _, c := range b.children {
		if c.Role() == RoleTitle {
			out = append(out, c)
		}
	}
	return out
}

// contentChildren returns the children not carrying RoleTitle.
func (b *BaseNode) contentChildren() []Node {
	var out []Node
	for _, c := range b.children {
		if c.Role() != RoleTitle {
			out = append(out, c)
		}
	}
	return out
}
