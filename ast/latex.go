package ast

import "strings"

var latexEscapes = map[byte]string{
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

func isLaTeXSpecial(c byte) bool {
	_, ok := latexEscapes[c]
	return ok
}

// EscapeLaTeX escapes the LaTeX special characters & % # _ { } ~ ^ \ in
// plain text. A character preceded by an odd number of backslashes counts
// as already escaped and is left untouched, so pre-escaped input survives a
// second pass unchanged. A backslash that itself escapes a following
// special character is kept; a stray backslash becomes \textbackslash{}.
func EscapeLaTeX(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	backslashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		esc, special := latexEscapes[c]
		switch {
		case !special:
			sb.WriteByte(c)
			backslashes = 0
		case backslashes%2 == 1:
			// Already escaped in the input.
			sb.WriteByte(c)
			if c == '\\' {
				backslashes++
			} else {
				backslashes = 0
			}
		case c == '\\':
			if i+1 < len(s) && isLaTeXSpecial(s[i+1]) {
				// Escape prefix for the next special character.
				sb.WriteByte(c)
				backslashes++
			} else {
				sb.WriteString(esc)
				backslashes = 0
			}
		default:
			sb.WriteString(esc)
			backslashes = 0
		}
	}
	return sb.String()
}

// applyLaTeXStyles wraps text in the LaTeX commands for the given styles,
// outermost style first.
func applyLaTeXStyles(text string, styles []Style) string {
	for i := len(styles) - 1; i >= 0; i-- {
		switch styles[i] {
		case StyleBold:
			text = `\textbf{` + text + `}`
		case StyleItalic:
			text = `\emph{` + text + `}`
		case StyleUnderline:
			text = `\underline{` + text + `}`
		case StyleStrikethrough:
			text = `\sout{` + text + `}`
		case StyleSuperscript:
			text = `\textsuperscript{` + text + `}`
		case StyleSubscript:
			text = `\textsubscript{` + text + `}`
		case StyleMonospace:
			text = `\texttt{` + text + `}`
		}
	}
	return text
}

// applyMarkdownStyles wraps text in the Markdown markers for the given
// styles, outermost style first. Decorations without a Markdown form fall
// back to inline HTML.
func applyMarkdownStyles(text string, styles []Style) string {
	for i := len(styles) - 1; i >= 0; i-- {
		switch styles[i] {
		case StyleBold:
			text = "**" + text + "**"
		case StyleItalic:
			text = "*" + text + "*"
		case StyleUnderline:
			text = "<u>" + text + "</u>"
		case StyleStrikethrough:
			text = "~~" + text + "~~"
		case StyleSuperscript:
			text = "<sup>" + text + "</sup>"
		case StyleSubscript:
			text = "<sub>" + text + "</sub>"
		case StyleMonospace:
			text = "`" + text + "`"
		}
	}
	return text
}
