package ast

// Code is a block of verbatim source code.
type Code struct {
	BaseNode
	Content  string
	Language string
}

// NewCode creates a code block.
func NewCode(id, content, language string) *Code {
	c := &Code{Content: content, Language: language}
	c.init(c, id, KindCode)
	return c
}

// LaTeX renders a verbatim environment.
func (c *Code) LaTeX(o *Options) string {
	return "\\begin{verbatim}\n" + c.Content + "\n\\end{verbatim}"
}

// Markdown renders a fenced code block tagged with the language.
func (c *Code) Markdown(o *Options) string {
	return "```" + c.Language + "\n" + c.Content + "\n```"
}

// CopyText returns the bare source.
func (c *Code) CopyText(o *Options) string { return c.Content }

// Data converts the node back to its tagged source form.
func (c *Code) Data() NodeData {
	d := c.baseData()
	d.Text = c.Content
	d.Language = c.Language
	return d
}
