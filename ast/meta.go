package ast

import "strings"

// Meta is the front-matter family of kinds: title, subtitle, author,
// affiliation, abstract and keywords. They share the container mechanics
// and differ only in the markup wrapped around their children, so one type
// with a kind switch covers them.
type Meta struct {
	BaseNode
}

// NewTitle creates a document title node.
func NewTitle(id string) *Meta { return newMeta(id, KindTitle) }

// NewSubtitle creates a document subtitle node.
func NewSubtitle(id string) *Meta { return newMeta(id, KindSubtitle) }

// NewAuthor creates an author node.
func NewAuthor(id string) *Meta { return newMeta(id, KindAuthor) }

// NewAffiliation creates an affiliation node.
func NewAffiliation(id string) *Meta { return newMeta(id, KindAffiliation) }

// NewAbstract creates an abstract node.
func NewAbstract(id string) *Meta { return newMeta(id, KindAbstract) }

// NewKeywords creates a keywords node.
func NewKeywords(id string) *Meta { return newMeta(id, KindKeywords) }

func newMeta(id string, kind Kind) *Meta {
	m := &Meta{}
	m.init(m, id, kind)
	return m
}

func (m *Meta) LaTeX(o *Options) string {
	content := Render(m.children, FormatLaTeX, o)
	switch m.kind {
	case KindTitle:
		return `\title{` + content + `}`
	case KindSubtitle:
		return `\subtitle{` + content + `}`
	case KindAuthor:
		return `\author{` + content + `}`
	case KindAffiliation:
		return `\affiliation{` + content + `}`
	case KindAbstract:
		return "\\begin{abstract}\n" + content + "\n\\end{abstract}"
	case KindKeywords:
		return `\keywords{` + content + `}`
	default:
		return content
	}
}

func (m *Meta) Markdown(o *Options) string {
	content := Render(m.children, FormatMarkdown, o)
	switch m.kind {
	case KindTitle:
		return "# " + content
	case KindSubtitle:
		return "*" + content + "*"
	case KindAbstract:
		return "**Abstract.** " + content
	case KindKeywords:
		return "**Keywords:** " + content
	default:
		return content
	}
}

func (m *Meta) CopyText(o *Options) string {
	content := Render(m.children, FormatCopyText, o)
	switch m.kind {
	case KindAbstract:
		return "Abstract. " + content
	case KindKeywords:
		return "Keywords: " + strings.TrimSpace(content)
	default:
		return content
	}
}
