// Package view describes what a host should paint. A Node tree is plain data:
// it holds no callbacks, so two renders of the same state compare equal and
// encode to the same bytes.
package view

import (
	"reflect"

	"github.com/goccy/go-json"

	"github.com/weegigs/wee-counter-go/we"
)

type Kind string

const (
	KindRow       Kind = "row"
	KindColumn    Kind = "column"
	KindSpace     Kind = "space"
	KindText      Kind = "text"
	KindButton    Kind = "button"
	KindTextInput Kind = "text-input"
)

type Alignment string

const (
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
)

// Handle is an opaque token a host uses to keep interaction state (focus,
// press animation) for a widget between renders.
type Handle string

type Node struct {
	Kind        Kind           `json:"kind"`
	Handle      Handle         `json:"handle,omitempty"`
	Content     string         `json:"content,omitempty"`
	Size        uint16         `json:"size,omitempty"`
	Align       Alignment      `json:"align,omitempty"`
	AlignItems  Alignment      `json:"alignItems,omitempty"`
	Width       Length         `json:"width,omitempty"`
	Padding     uint16         `json:"padding,omitempty"`
	Style       *ButtonStyle   `json:"style,omitempty"`
	Press       *Action        `json:"press,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Value       string         `json:"value,omitempty"`
	Input       we.MessageName `json:"input,omitempty"`
	Children    []Node         `json:"children,omitempty"`
}

// Render produces the view for a state. Implementations must be pure.
type Render[S any] func(state S) Node

func Equal(a Node, b Node) bool {
	return reflect.DeepEqual(a, b)
}

func Encode(node Node) ([]byte, error) {
	return json.Marshal(node)
}

// Walk visits node and its descendants depth first. Returning false from
// visit skips the children of that node.
func Walk(node Node, visit func(node Node) bool) {
	if !visit(node) {
		return
	}

	for _, child := range node.Children {
		Walk(child, visit)
	}
}

func Find(node Node, handle Handle) (Node, bool) {
	var found Node
	var ok bool

	Walk(node, func(n Node) bool {
		if ok {
			return false
		}

		if n.Handle == handle && handle != "" {
			found, ok = n, true
			return false
		}

		return true
	})

	return found, ok
}

// Interactive lists the buttons and inputs of a tree in paint order.
func Interactive(node Node) []Node {
	var nodes []Node
	Walk(node, func(n Node) bool {
		if n.Kind == KindButton || n.Kind == KindTextInput {
			nodes = append(nodes, n)
		}
		return true
	})

	return nodes
}
