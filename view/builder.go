package view

import (
	"github.com/weegigs/wee-counter-go/we"
)

func Row(children ...Node) Node {
	return Node{Kind: KindRow, Children: children}
}

func Column(children ...Node) Node {
	return Node{Kind: KindColumn, Children: children}
}

func Space(width Length) Node {
	return Node{Kind: KindSpace, Width: width}
}

func Text(content string) Node {
	return Node{Kind: KindText, Content: content}
}

func Button(handle Handle, label string) Node {
	return Node{Kind: KindButton, Handle: handle, Content: label}
}

// TextInput shows value and emits the named message on every edit. The
// message type must decode from InputChange.
func TextInput(handle Handle, placeholder string, value string, input we.Message) Node {
	return Node{
		Kind:        KindTextInput,
		Handle:      handle,
		Placeholder: placeholder,
		Value:       value,
		Input:       we.MessageNameOf(input),
	}
}

// Push returns a copy of n with child appended. n is not modified.
func (n Node) Push(child Node) Node {
	children := make([]Node, len(n.Children), len(n.Children)+1)
	copy(children, n.Children)
	n.Children = append(children, child)

	return n
}

func (n Node) WithSize(size uint16) Node {
	n.Size = size
	return n
}

func (n Node) WithHorizontalAlignment(alignment Alignment) Node {
	n.Align = alignment
	return n
}

func (n Node) WithAlignItems(alignment Alignment) Node {
	n.AlignItems = alignment
	return n
}

func (n Node) WithWidth(width Length) Node {
	n.Width = width
	return n
}

func (n Node) WithPadding(padding uint16) Node {
	n.Padding = padding
	return n
}

func (n Node) WithStyle(style ButtonStyle) Node {
	n.Style = &style
	return n
}

// OnPress sets the message a button emits. It panics if the message cannot
// be encoded, which only happens for types json cannot marshal.
func (n Node) OnPress(message we.Message) Node {
	action, err := NewAction(message)
	if err != nil {
		panic(err)
	}

	n.Press = &action
	return n
}
