package weterm

import (
	"fmt"
	"io"
	"strings"

	"github.com/weegigs/wee-counter-go/view"
)

// Paint writes a plain text rendition of a view. Every leaf gets its own
// line, indented by depth; spaces are not drawn.
func Paint(w io.Writer, title string, node view.Node) error {
	p := &painter{w: w}

	p.line(0, title)
	p.line(0, strings.Repeat("=", len(title)))
	p.node(0, node)

	return p.err
}

type painter struct {
	w   io.Writer
	err error
}

func (p *painter) line(depth int, text string) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), text)
}

func (p *painter) node(depth int, node view.Node) {
	switch node.Kind {
	case view.KindRow, view.KindColumn:
		for _, child := range node.Children {
			p.node(depth+1, child)
		}
	case view.KindText:
		p.line(depth, node.Content)
	case view.KindButton:
		p.line(depth, fmt.Sprintf("[ %s ]", node.Content))
	case view.KindTextInput:
		if node.Value == "" {
			p.line(depth, fmt.Sprintf("> (%s)", node.Placeholder))
		} else {
			p.line(depth, fmt.Sprintf("> %s", node.Value))
		}
	}
}
