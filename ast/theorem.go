package ast

import "strings"

// Theorem is a theorem-like environment (theorem, lemma, proof). Its title
// children become the environment's optional heading and render before the
// body regardless of insertion order.
type Theorem struct {
	BaseNode
	Env string
}

// NewTheorem creates a theorem environment.
func NewTheorem(id string) *Theorem { return newTheoremKind(id, KindTheorem, "theorem") }

// NewLemma creates a lemma environment.
func NewLemma(id string) *Theorem { return newTheoremKind(id, KindLemma, "lemma") }

// NewProof creates a proof environment.
func NewProof(id string) *Theorem { return newTheoremKind(id, KindProof, "proof") }

func newTheoremKind(id string, kind Kind, env string) *Theorem {
	t := &Theorem{Env: env}
	t.init(t, id, kind)
	return t
}

// LaTeX renders \begin{env}[title]\nbody\n\end{env}.
func (t *Theorem) LaTeX(o *Options) string {
	var sb strings.Builder
	sb.WriteString("\\begin{" + t.Env + "}")
	if title := Render(t.titleChildren(), FormatLaTeX, o); title != "" {
		sb.WriteString("[" + title + "]")
	}
	for _, l := range t.labels {
		sb.WriteString("\n\\label{" + l + "}")
	}
	sb.WriteString("\n")
	sb.WriteString(Render(t.contentChildren(), FormatLaTeX, o))
	sb.WriteString("\n\\end{" + t.Env + "}")
	return sb.String()
}

// Markdown renders **Theorem (title).** body.
func (t *Theorem) Markdown(o *Options) string {
	var sb strings.Builder
	heading := strings.ToUpper(t.Env[:1]) + t.Env[1:]
	if title := Render(t.titleChildren(), FormatMarkdown, o); title != "" {
		heading += " (" + title + ")"
	}
	sb.WriteString("**" + heading + ".** ")
	sb.WriteString(Render(t.contentChildren(), FormatMarkdown, o))
	return sb.String()
}

// CopyText renders the heading sentence, then the body.
func (t *Theorem) CopyText(o *Options) string {
	var sb strings.Builder
	heading := strings.ToUpper(t.Env[:1]) + t.Env[1:]
	if title := Render(t.titleChildren(), FormatCopyText, o); title != "" {
		heading += " (" + title + ")"
	}
	sb.WriteString(heading + ". ")
	sb.WriteString(Render(t.contentChildren(), FormatCopyText, o))
	return sb.String()
}

// Data converts the node back to its tagged source form.
func (t *Theorem) Data() NodeData {
	d := t.baseData()
	d.Environment = t.Env
	return d
}
