package ast

// Kind is the enumerated discriminator of a node. It is fixed at
// construction time and doubles as the tag of the serialized form.
type Kind string

const (
	KindDocument          Kind = "document"
	KindSection           Kind = "section"
	KindAppendix          Kind = "appendix"
	KindAcknowledgments   Kind = "acknowledgments"
	KindParagraph         Kind = "paragraph"
	KindText              Kind = "text"
	KindTitle             Kind = "title"
	KindSubtitle          Kind = "subtitle"
	KindAuthor            Kind = "author"
	KindAffiliation       Kind = "affiliation"
	KindAbstract          Kind = "abstract"
	KindKeywords          Kind = "keywords"
	KindEquation          Kind = "equation"
	KindEquationArray     Kind = "equation-array"
	KindCitation          Kind = "citation"
	KindReference         Kind = "reference"
	KindLink              Kind = "link"
	KindURL               Kind = "url"
	KindTable             Kind = "table"
	KindTableRow          Kind = "table-row"
	KindTableCell         Kind = "table-cell"
	KindFigure            Kind = "figure"
	KindImage             Kind = "image"
	KindCaption           Kind = "caption"
	KindList              Kind = "list"
	KindListItem          Kind = "list-item"
	KindCode              Kind = "code"
	KindQuote             Kind = "quote"
	KindTheorem           Kind = "theorem"
	KindLemma             Kind = "lemma"
	KindProof             Kind = "proof"
	KindFootnote          Kind = "footnote"
	KindBibliography      Kind = "bibliography"
	KindBibliographyItem  Kind = "bibliography-item"
	KindBreak             Kind = "break"
	KindRaw               Kind = "raw"
)

// Kinds lists every known node kind in catalog order.
var Kinds = []Kind{
	KindDocument, KindSection, KindAppendix, KindAcknowledgments,
	KindParagraph, KindText, KindTitle, KindSubtitle, KindAuthor,
	KindAffiliation, KindAbstract, KindKeywords, KindEquation,
	KindEquationArray, KindCitation, KindReference, KindLink, KindURL,
	KindTable, KindTableRow, KindTableCell, KindFigure, KindImage,
	KindCaption, KindList, KindListItem, KindCode, KindQuote, KindTheorem,
	KindLemma, KindProof, KindFootnote, KindBibliography,
	KindBibliographyItem, KindBreak, KindRaw,
}

var inlineKinds = map[Kind]bool{
	KindText:      true,
	KindCitation:  true,
	KindReference: true,
	KindLink:      true,
	KindURL:       true,
	KindFootnote:  true,
	KindBreak:     true,
	KindRaw:       true,
}

// Inline reports whether nodes of this kind render inline by default.
// Equations are inline only in inline display mode and override this.
func (k Kind) Inline() bool { return inlineKinds[k] }

// Known reports whether k is part of the node catalog.
func (k Kind) Known() bool {
	for _, kk := range Kinds {
		if kk == k {
			return true
		}
	}
	return false
}
