package ast

// Text is a leaf holding literal prose. It never owns children.
type Text struct {
	BaseNode
	Content string
}

// NewText creates a text node. An empty id gets a generated one.
func NewText(id, content string) *Text {
	t := &Text{Content: content}
	t.init(t, id, KindText)
	return t
}

// NewStyledText creates a text node carrying textual decorations.
func NewStyledText(id, content string, styles ...Style) *Text {
	t := NewText(id, content)
	t.styles = styles
	return t
}

// LaTeX renders the escaped content wrapped in its style commands.
func (t *Text) LaTeX(o *Options) string {
	out := EscapeLaTeX(t.Content)
	if !o.skipStyles() {
		out = applyLaTeXStyles(out, t.styles)
	}
	return out
}

// Markdown renders the content wrapped in its style markers.
func (t *Text) Markdown(o *Options) string {
	out := t.Content
	if !o.skipStyles() {
		out = applyMarkdownStyles(out, t.styles)
	}
	return out
}

// CopyText returns the raw content.
func (t *Text) CopyText(o *Options) string { return t.Content }

// Data converts the node back to its tagged source form.
func (t *Text) Data() NodeData {
	d := t.baseData()
	d.Text = t.Content
	return d
}

// Break is an explicit line break.
type Break struct {
	BaseNode
}

// NewBreak creates a line break node.
func NewBreak(id string) *Break {
	b := &Break{}
	b.init(b, id, KindBreak)
	return b
}

func (b *Break) LaTeX(o *Options) string    { return `\\` }
func (b *Break) Markdown(o *Options) string { return "  \n" }
func (b *Break) CopyText(o *Options) string { return "\n" }

// Raw is a leaf emitting its payload verbatim into LaTeX output. It is
// skipped in Markdown and copy text, which have no verbatim passthrough.
type Raw struct {
	BaseNode
	Content string
}

// NewRaw creates a raw passthrough node.
func NewRaw(id, content string) *Raw {
	r := &Raw{Content: content}
	r.init(r, id, KindRaw)
	return r
}

func (r *Raw) LaTeX(o *Options) string    { return r.Content }
func (r *Raw) Markdown(o *Options) string { return "" }
func (r *Raw) CopyText(o *Options) string { return "" }

// Data converts the node back to its tagged source form.
func (r *Raw) Data() NodeData {
	d := r.baseData()
	d.Text = r.Content
	return d
}
