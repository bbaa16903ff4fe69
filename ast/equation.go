package ast

import "strings"

// DisplayMode selects how an equation is laid out.
type DisplayMode int

const (
	DisplayInline DisplayMode = iota
	DisplayBlock
	DisplayNumbered
)

// String returns the string representation of the display mode.
func (m DisplayMode) String() string {
	switch m {
	case DisplayBlock:
		return "block"
	case DisplayNumbered:
		return "numbered"
	default:
		return "inline"
	}
}

// ParseDisplayMode parses a display mode tag; anything unrecognized is
// treated as inline.
func ParseDisplayMode(s string) DisplayMode {
	switch s {
	case "block":
		return DisplayBlock
	case "numbered":
		return DisplayNumbered
	default:
		return DisplayInline
	}
}

// Equation is a leaf holding a math expression. Its display mode decides
// both the delimiters and whether it participates in inline flow.
type Equation struct {
	BaseNode
	Expr    string
	Display DisplayMode
}

// NewEquation creates an equation node.
func NewEquation(id, expr string, display DisplayMode) *Equation {
	e := &Equation{Expr: expr, Display: display}
	e.init(e, id, KindEquation)
	return e
}

// Inline reports whether the equation participates in inline text flow.
func (e *Equation) Inline() bool { return e.Display == DisplayInline }

// LaTeX renders $expr$, $$\nexpr\n$$ or \begin{equation}...\end{equation}
// for inline, block and numbered display respectively.
func (e *Equation) LaTeX(o *Options) string {
	switch e.Display {
	case DisplayBlock:
		return "$$\n" + e.Expr + "\n$$"
	case DisplayNumbered:
		var sb strings.Builder
		sb.WriteString("\\begin{equation}\n")
		sb.WriteString(e.Expr)
		for _, l := range e.labels {
			sb.WriteString("\n\\label{" + l + "}")
		}
		sb.WriteString("\n\\end{equation}")
		return sb.String()
	default:
		return "$" + e.Expr + "$"
	}
}

// Markdown renders math-delimited output; numbered equations lose their
// number since Markdown has none.
func (e *Equation) Markdown(o *Options) string {
	if e.Display == DisplayInline {
		return "$" + e.Expr + "$"
	}
	return "$$\n" + e.Expr + "\n$$"
}

// CopyText returns the bare expression.
func (e *Equation) CopyText(o *Options) string { return e.Expr }

// Data converts the node back to its tagged source form.
func (e *Equation) Data() NodeData {
	d := e.baseData()
	d.Text = e.Expr
	d.Display = e.Display.String()
	return d
}

// EquationArray is a block of aligned equations.
type EquationArray struct {
	BaseNode
	Exprs []string
}

// NewEquationArray creates an equation array from its rows.
func NewEquationArray(id string, exprs ...string) *EquationArray {
	a := &EquationArray{Exprs: exprs}
	a.init(a, id, KindEquationArray)
	return a
}

// LaTeX renders an align environment with one row per expression.
func (a *EquationArray) LaTeX(o *Options) string {
	return "\\begin{align}\n" + strings.Join(a.Exprs, " \\\\\n") + "\n\\end{align}"
}

// Markdown renders display math, one expression per line.
func (a *EquationArray) Markdown(o *Options) string {
	return "$$\n" + strings.Join(a.Exprs, " \\\\\n") + "\n$$"
}

// CopyText joins the expressions line by line.
func (a *EquationArray) CopyText(o *Options) string { return strings.Join(a.Exprs, "\n") }

// Data converts the node back to its tagged source form.
func (a *EquationArray) Data() NodeData {
	d := a.baseData()
	d.Text = strings.Join(a.Exprs, "\n")
	return d
}
