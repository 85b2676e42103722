package tree

import "strings"

// DefaultIndentWidth is the number of spaces per level of depth.
const DefaultIndentWidth = 2

// Printer renders a subtree as indented markup. Indentation comes from
// each element's stored depth, never from the position in the output.
type Printer struct {
	// IndentWidth is the number of spaces per depth level. Negative
	// widths indent like zero.
	IndentWidth int
	// ExpandEmpty puts the open and close tags of childless elements on
	// separate lines.
	ExpandEmpty bool
}

// NewPrinter returns a printer indenting DefaultIndentWidth spaces per
// level.
func NewPrinter() Printer {
	return Printer{IndentWidth: DefaultIndentWidth}
}

// Print renders the subtree rooted at e.
func (p Printer) Print(e *Element) string {
	var b strings.Builder
	p.write(&b, e)
	return b.String()
}

func (p Printer) write(b *strings.Builder, e *Element) {
	width := p.IndentWidth
	if width < 0 {
		width = 0
	}
	spaces := strings.Repeat(" ", e.depth*width)

	b.WriteString(spaces)
	b.WriteString(openTag(e))
	if len(e.children) == 0 && !p.ExpandEmpty {
		b.WriteString(closeTag(e))
		b.WriteByte('\n')
		return
	}

	b.WriteByte('\n')
	for _, child := range e.children {
		p.write(b, child)
	}
	b.WriteString(spaces)
	b.WriteString(closeTag(e))
	b.WriteByte('\n')
}

func openTag(e *Element) string {
	if e.classes.Len() == 0 {
		return "<" + e.TagName + ">"
	}
	return "<" + e.TagName + ` class="` + strings.Join(e.classes.names, " ") + `">`
}

func closeTag(e *Element) string {
	return "</" + e.TagName + ">"
}

// PrintTree renders the subtree rooted at e with the default printer.
func (e *Element) PrintTree() string {
	return NewPrinter().Print(e)
}

func (e *Element) String() string {
	return e.PrintTree()
}
