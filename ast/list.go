package ast

import (
	"fmt"
	"strings"
)

// List is a block container of list items, ordered or unordered.
type List struct {
	BaseNode
	Ordered bool
}

// NewList creates an empty list; append list-item children to fill it.
func NewList(id string, ordered bool) *List {
	l := &List{Ordered: ordered}
	l.init(l, id, KindList)
	return l
}

func (l *List) items() []*ListItem {
	var items []*ListItem
	for _, c := range l.children {
		if it, ok := c.(*ListItem); ok {
			items = append(items, it)
		}
	}
	return items
}

// LaTeX renders an itemize or enumerate environment.
func (l *List) LaTeX(o *Options) string {
	env := "itemize"
	if l.Ordered {
		env = "enumerate"
	}
	var sb strings.Builder
	sb.WriteString("\\begin{" + env + "}\n")
	for _, it := range l.items() {
		sb.WriteString("\\item " + it.LaTeX(o) + "\n")
	}
	sb.WriteString("\\end{" + env + "}")
	return sb.String()
}

// Markdown renders bullet or numbered lines, indenting nested lists two
// spaces per level.
func (l *List) Markdown(o *Options) string {
	return strings.TrimSuffix(l.markdownIndented(o, 0), "\n")
}

func (l *List) markdownIndented(o *Options, depth int) string {
	indent := strings.Repeat("  ", depth)
	var sb strings.Builder
	for i, it := range l.items() {
		prefix := "- "
		if l.Ordered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		sb.WriteString(indent + prefix + it.inlineMarkdown(o) + "\n")
		for _, c := range it.Children() {
			if nested, ok := c.(*List); ok {
				sb.WriteString(nested.markdownIndented(o, depth+1))
			}
		}
	}
	return sb.String()
}

// CopyText renders one line per item.
func (l *List) CopyText(o *Options) string {
	var lines []string
	for _, it := range l.items() {
		lines = append(lines, it.CopyText(o))
	}
	return strings.Join(lines, "\n")
}

// Data converts the node back to its tagged source form.
func (l *List) Data() NodeData {
	d := l.baseData()
	d.Ordered = l.Ordered
	return d
}

// ListItem is one entry of a list. Its title children render before its
// content children (description-style items), and nested lists render as
// indented sublists.
type ListItem struct {
	BaseNode
}

// NewListItem creates an empty list item.
func NewListItem(id string) *ListItem {
	it := &ListItem{}
	it.init(it, id, KindListItem)
	return it
}

func (it *ListItem) orderedContent() []Node {
	out := it.titleChildren()
	for _, c := range it.contentChildren() {
		if _, nested := c.(*List); nested {
			continue
		}
		out = append(out, c)
	}
	return out
}

// LaTeX renders the item content; nested lists follow inline.
func (it *ListItem) LaTeX(o *Options) string {
	out := Render(it.orderedContent(), FormatLaTeX, o)
	for _, c := range it.Children() {
		if nested, ok := c.(*List); ok {
			out += "\n" + nested.LaTeX(o)
		}
	}
	return out
}

// inlineMarkdown renders the item's own line without nested lists, which
// the owning list emits as indented sublists.
func (it *ListItem) inlineMarkdown(o *Options) string {
	return Render(it.orderedContent(), FormatMarkdown, o)
}

// Markdown renders the item content including nested lists.
func (it *ListItem) Markdown(o *Options) string {
	out := it.inlineMarkdown(o)
	for _, c := range it.Children() {
		if nested, ok := c.(*List); ok {
			out += "\n" + nested.Markdown(o)
		}
	}
	return out
}

// CopyText renders the item content.
func (it *ListItem) CopyText(o *Options) string {
	out := Render(it.orderedContent(), FormatCopyText, o)
	for _, c := range it.Children() {
		if nested, ok := c.(*List); ok {
			out += "\n" + nested.CopyText(o)
		}
	}
	return out
}
