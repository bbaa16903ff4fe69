package ast

import "strings"

// Bibliography is the block container of bibliography items.
type Bibliography struct {
	BaseNode
}

// NewBibliography creates an empty bibliography.
func NewBibliography(id string) *Bibliography {
	b := &Bibliography{}
	b.init(b, id, KindBibliography)
	return b
}

// LaTeX renders a thebibliography environment.
func (b *Bibliography) LaTeX(o *Options) string {
	var sb strings.Builder
	sb.WriteString("\\begin{thebibliography}{99}\n")
	sb.WriteString(Render(b.children, FormatLaTeX, o))
	sb.WriteString("\n\\end{thebibliography}")
	return sb.String()
}

// Markdown renders a References heading followed by the items.
func (b *Bibliography) Markdown(o *Options) string {
	return "## References\n\n" + Render(b.children, FormatMarkdown, o)
}

// CopyText renders the items line by line.
func (b *Bibliography) CopyText(o *Options) string {
	return "References\n" + Render(b.children, FormatCopyText, o)
}

// BibliographyItem is one bibliography entry; its children are the
// formatted entry text.
type BibliographyItem struct {
	BaseNode
	Key string
}

// NewBibliographyItem creates a bibliography entry for the given cite key.
func NewBibliographyItem(id, key string) *BibliographyItem {
	it := &BibliographyItem{Key: key}
	it.init(it, id, KindBibliographyItem)
	return it
}

// LaTeX renders \bibitem{key} followed by the entry text.
func (it *BibliographyItem) LaTeX(o *Options) string {
	return `\bibitem{` + it.Key + `} ` + Render(it.children, FormatLaTeX, o)
}

// Markdown renders the anchor the citation links jump to, then the entry;
// math mode suppresses the anchor.
func (it *BibliographyItem) Markdown(o *Options) string {
	entry := `\[` + it.Key + `\] ` + Render(it.children, FormatMarkdown, o)
	if o.math() {
		return entry
	}
	return `<a id="bib-` + it.Key + `"></a>` + entry
}

// CopyText renders the bracketed key and entry text.
func (it *BibliographyItem) CopyText(o *Options) string {
	return "[" + it.Key + "] " + Render(it.children, FormatCopyText, o)
}

// Data converts the node back to its tagged source form.
func (it *BibliographyItem) Data() NodeData {
	d := it.baseData()
	d.Key = it.Key
	return d
}
