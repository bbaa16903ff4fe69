package ast

import "strings"

// Citation is an inline pointer at one or more bibliography keys.
type Citation struct {
	BaseNode
	Keys []string
}

// NewCitation creates a citation node.
func NewCitation(id string, keys ...string) *Citation {
	c := &Citation{Keys: keys}
	c.init(c, id, KindCitation)
	return c
}

// LaTeX renders \cite{key1,key2}.
func (c *Citation) LaTeX(o *Options) string {
	return `\cite{` + strings.Join(c.Keys, ",") + `}`
}

// Markdown renders one [\[key\]](#bib-key) link per key; in math mode the
// anchor is suppressed and only the bracketed keys remain.
func (c *Citation) Markdown(o *Options) string {
	var sb strings.Builder
	for _, k := range c.Keys {
		if o.math() {
			sb.WriteString(`[` + k + `]`)
			continue
		}
		sb.WriteString(`[\[` + k + `\]](#bib-` + k + `)`)
	}
	return sb.String()
}

// CopyText renders the keys in one bracket pair.
func (c *Citation) CopyText(o *Options) string {
	return "[" + strings.Join(c.Keys, ", ") + "]"
}

// Data converts the node back to its tagged source form.
func (c *Citation) Data() NodeData {
	d := c.baseData()
	d.Keys = c.Keys
	return d
}

// Reference is an inline cross-reference to labeled targets (figures,
// tables, equations, sections).
type Reference struct {
	BaseNode
	Targets []string
}

// NewReference creates a reference node.
func NewReference(id string, targets ...string) *Reference {
	r := &Reference{Targets: targets}
	r.init(r, id, KindReference)
	return r
}

// LaTeX renders one \ref per target.
func (r *Reference) LaTeX(o *Options) string {
	parts := make([]string, len(r.Targets))
	for i, t := range r.Targets {
		parts[i] = `\ref{` + t + `}`
	}
	return strings.Join(parts, ", ")
}

// Markdown renders resolver-provided reference text linked to its anchor.
// Unresolved targets render as their raw label; math mode suppresses the
// anchor and emits the text alone.
func (r *Reference) Markdown(o *Options) string {
	parts := make([]string, len(r.Targets))
	for i, t := range r.Targets {
		text := t
		anchor := ""
		if ref := o.resolveLabel(t); ref != nil {
			if rt := ref.ReferenceText(); rt != "" {
				text = rt
			}
			anchor = ref.AnchorID()
		}
		if anchor == "" || o.math() {
			parts[i] = text
		} else {
			parts[i] = "[" + text + "](#" + anchor + ")"
		}
	}
	return strings.Join(parts, ", ")
}

// CopyText renders the resolved reference text, or the raw target labels.
func (r *Reference) CopyText(o *Options) string {
	parts := make([]string, len(r.Targets))
	for i, t := range r.Targets {
		parts[i] = t
		if ref := o.resolveLabel(t); ref != nil {
			if rt := ref.ReferenceText(); rt != "" {
				parts[i] = rt
			}
		}
	}
	return strings.Join(parts, ", ")
}

// Data converts the node back to its tagged source form.
func (r *Reference) Data() NodeData {
	d := r.baseData()
	d.Keys = r.Targets
	return d
}

// Link is an inline hyperlink wrapping child content.
type Link struct {
	BaseNode
	URL string
}

// NewLink creates a link node; its children are the link text.
func NewLink(id, url string) *Link {
	l := &Link{URL: url}
	l.init(l, id, KindLink)
	return l
}

// LaTeX renders \href{url}{text}.
func (l *Link) LaTeX(o *Options) string {
	return `\href{` + l.URL + `}{` + Render(l.children, FormatLaTeX, o) + `}`
}

// Markdown renders [text](url).
func (l *Link) Markdown(o *Options) string {
	return "[" + Render(l.children, FormatMarkdown, o) + "](" + l.URL + ")"
}

// CopyText renders the link text only.
func (l *Link) CopyText(o *Options) string { return Render(l.children, FormatCopyText, o) }

// Data converts the node back to its tagged source form.
func (l *Link) Data() NodeData {
	d := l.baseData()
	d.Target = l.URL
	return d
}

// URL is a bare inline address rendered as itself.
type URL struct {
	BaseNode
	Address string
}

// NewURL creates a bare URL node.
func NewURL(id, address string) *URL {
	u := &URL{Address: address}
	u.init(u, id, KindURL)
	return u
}

func (u *URL) LaTeX(o *Options) string    { return `\url{` + u.Address + `}` }
func (u *URL) Markdown(o *Options) string { return "<" + u.Address + ">" }
func (u *URL) CopyText(o *Options) string { return u.Address }

// Data converts the node back to its tagged source form.
func (u *URL) Data() NodeData {
	d := u.baseData()
	d.Target = u.Address
	return d
}

// Footnote is an inline note wrapping child content.
type Footnote struct {
	BaseNode
}

// NewFootnote creates a footnote node; its children are the note body.
func NewFootnote(id string) *Footnote {
	f := &Footnote{}
	f.init(f, id, KindFootnote)
	return f
}

// LaTeX renders \footnote{...}.
func (f *Footnote) LaTeX(o *Options) string {
	return `\footnote{` + Render(f.children, FormatLaTeX, o) + `}`
}

// Markdown renders an inline footnote ^[...].
func (f *Footnote) Markdown(o *Options) string {
	return "^[" + Render(f.children, FormatMarkdown, o) + "]"
}

// CopyText renders the note body in parentheses.
func (f *Footnote) CopyText(o *Options) string {
	return "(" + Render(f.children, FormatCopyText, o) + ")"
}
