package ast

import "strings"

// Figure is a block float holding an image source and optional caption
// children.
type Figure struct {
	BaseNode
	Src string
	Alt string
}

// NewFigure creates a figure node for the given image source.
func NewFigure(id, src string) *Figure {
	f := &Figure{Src: src}
	f.init(f, id, KindFigure)
	return f
}

// LaTeX renders a figure environment around \includegraphics.
func (f *Figure) LaTeX(o *Options) string {
	var sb strings.Builder
	sb.WriteString("\\begin{figure}\n")
	sb.WriteString("\\includegraphics{" + o.assetPath(f.Src) + "}")
	for _, l := range f.labels {
		sb.WriteString("\n\\label{" + l + "}")
	}
	if content := Render(f.children, FormatLaTeX, o); content != "" {
		sb.WriteString("\n")
		sb.WriteString(content)
	}
	sb.WriteString("\n\\end{figure}")
	return sb.String()
}

// Markdown renders an image link with the caption below.
func (f *Figure) Markdown(o *Options) string {
	var sb strings.Builder
	sb.WriteString("![" + f.Alt + "](" + o.assetPath(f.Src) + ")")
	if content := Render(f.children, FormatMarkdown, o); content != "" {
		sb.WriteString("\n\n")
		sb.WriteString(content)
	}
	return sb.String()
}

// CopyText renders the alt text and caption.
func (f *Figure) CopyText(o *Options) string {
	parts := []string{}
	if f.Alt != "" {
		parts = append(parts, f.Alt)
	}
	if content := Render(f.children, FormatCopyText, o); content != "" {
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n")
}

// Data converts the node back to its tagged source form.
func (f *Figure) Data() NodeData {
	d := f.baseData()
	d.Src = f.Src
	d.Alt = f.Alt
	return d
}

// Image is a bare block image without the figure float.
type Image struct {
	BaseNode
	Src string
	Alt string
}

// NewImage creates an image node for the given source.
func NewImage(id, src string) *Image {
	img := &Image{Src: src}
	img.init(img, id, KindImage)
	return img
}

func (img *Image) LaTeX(o *Options) string {
	return "\\includegraphics{" + o.assetPath(img.Src) + "}"
}

func (img *Image) Markdown(o *Options) string {
	return "![" + img.Alt + "](" + o.assetPath(img.Src) + ")"
}

func (img *Image) CopyText(o *Options) string { return img.Alt }

// Data converts the node back to its tagged source form.
func (img *Image) Data() NodeData {
	d := img.baseData()
	d.Src = img.Src
	d.Alt = img.Alt
	return d
}

// Caption is the caption of a figure or table; its children are the caption
// text.
type Caption struct {
	BaseNode
}

// NewCaption creates a caption node.
func NewCaption(id string) *Caption {
	c := &Caption{}
	c.init(c, id, KindCaption)
	return c
}

// LaTeX renders \caption{...}.
func (c *Caption) LaTeX(o *Options) string {
	return `\caption{` + Render(c.children, FormatLaTeX, o) + `}`
}

// Markdown renders the caption in emphasis.
func (c *Caption) Markdown(o *Options) string {
	return "*" + Render(c.children, FormatMarkdown, o) + "*"
}

// CopyText renders the caption text bare.
func (c *Caption) CopyText(o *Options) string { return Render(c.children, FormatCopyText, o) }
