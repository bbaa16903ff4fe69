package ast

import "strings"

// Document is the root container of a document tree.
type Document struct {
	BaseNode
}

// NewDocument creates an empty document root.
func NewDocument(id string) *Document {
	d := &Document{}
	d.init(d, id, KindDocument)
	return d
}

// Paragraph is a block container of inline content.
type Paragraph struct {
	BaseNode
}

// NewParagraph creates an empty paragraph.
func NewParagraph(id string) *Paragraph {
	p := &Paragraph{}
	p.init(p, id, KindParagraph)
	return p
}

// Section is a heading-level container. Its title children render before
// its content children regardless of insertion order. The same rendering
// serves the appendix and acknowledgments kinds.
type Section struct {
	BaseNode
	Level int
}

// NewSection creates a section at the given heading level (1-based).
func NewSection(id string, level int) *Section {
	return newSectionKind(id, KindSection, level)
}

// NewAppendix creates an appendix section.
func NewAppendix(id string) *Section { return newSectionKind(id, KindAppendix, 1) }

// NewAcknowledgments creates an acknowledgments section.
func NewAcknowledgments(id string) *Section { return newSectionKind(id, KindAcknowledgments, 1) }

func newSectionKind(id string, kind Kind, level int) *Section {
	if level < 1 {
		level = 1
	}
	s := &Section{Level: level}
	s.init(s, id, kind)
	return s
}

func (s *Section) latexCommand() string {
	switch s.Level {
	case 1:
		return `\section`
	case 2:
		return `\subsection`
	case 3:
		return `\subsubsection`
	default:
		return `\paragraph`
	}
}

// LaTeX renders the heading command around the title, then the content.
func (s *Section) LaTeX(o *Options) string {
	var sb strings.Builder
	sb.WriteString(s.latexCommand())
	sb.WriteString("{")
	sb.WriteString(Render(s.titleChildren(), FormatLaTeX, o))
	sb.WriteString("}")
	for _, l := range s.labels {
		sb.WriteString("\n\\label{" + l + "}")
	}
	if content := Render(s.contentChildren(), FormatLaTeX, o); content != "" {
		sb.WriteString("\n")
		sb.WriteString(content)
	}
	return sb.String()
}

// Markdown renders a hash heading one level deeper than the section level;
// a level 1 section additionally gets an underline rule.
func (s *Section) Markdown(o *Options) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", s.Level+1))
	sb.WriteString(" ")
	sb.WriteString(Render(s.titleChildren(), FormatMarkdown, o))
	if s.Level == 1 {
		sb.WriteString("\n---")
	}
	if content := Render(s.contentChildren(), FormatMarkdown, o); content != "" {
		sb.WriteString("\n\n")
		sb.WriteString(content)
	}
	return sb.String()
}

// CopyText renders the title on its own line, then the content.
func (s *Section) CopyText(o *Options) string {
	var sb strings.Builder
	sb.WriteString(Render(s.titleChildren(), FormatCopyText, o))
	if content := Render(s.contentChildren(), FormatCopyText, o); content != "" {
		sb.WriteString("\n")
		sb.WriteString(content)
	}
	return sb.String()
}

// Data converts the node back to its tagged source form.
func (s *Section) Data() NodeData {
	d := s.baseData()
	d.Level = s.Level
	return d
}

// Quote is a block quotation wrapping child content.
type Quote struct {
	BaseNode
}

// NewQuote creates a block quote.
func NewQuote(id string) *Quote {
	q := &Quote{}
	q.init(q, id, KindQuote)
	return q
}

// LaTeX renders a quote environment.
func (q *Quote) LaTeX(o *Options) string {
	return "\\begin{quote}\n" + Render(q.children, FormatLaTeX, o) + "\n\\end{quote}"
}

// Markdown prefixes every content line with "> ".
func (q *Quote) Markdown(o *Options) string {
	lines := strings.Split(Render(q.children, FormatMarkdown, o), "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n")
}

// CopyText renders the quoted content bare.
func (q *Quote) CopyText(o *Options) string { return Render(q.children, FormatCopyText, o) }
