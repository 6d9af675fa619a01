package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/we"
)

type Pressed struct{}

type Typed struct {
	Value string `json:"value"`
}

func sample() Node {
	return Row(
		Space(FillPortion(1)),
		Column(
			Button("press", "+").OnPress(Pressed{}).WithPadding(5),
			Text("0").WithSize(50).WithHorizontalAlignment(AlignCenter),
			TextInput("input", "type here", "", Typed{}),
		).WithAlignItems(AlignCenter),
	)
}

func TestBuilders(t *testing.T) {
	t.Run("push does not modify the receiver", func(t *testing.T) {
		base := Column(Text("a"))
		first := base.Push(Text("b"))
		second := base.Push(Text("c"))

		assert.Len(t, base.Children, 1)
		assert.Equal(t, "b", first.Children[1].Content)
		assert.Equal(t, "c", second.Children[1].Content)
	})

	t.Run("modifiers return copies", func(t *testing.T) {
		text := Text("x")
		sized := text.WithSize(50)

		assert.Equal(t, uint16(0), text.Size)
		assert.Equal(t, uint16(50), sized.Size)
	})

	t.Run("style is copied", func(t *testing.T) {
		style := ButtonStyle{BorderRadius: 1}
		button := Button("b", "b").WithStyle(style)
		style.BorderRadius = 2

		assert.Equal(t, float32(1), button.Style.BorderRadius)
	})

	t.Run("text input records the message name", func(t *testing.T) {
		input := TextInput("input", "p", "v", Typed{})
		assert.Equal(t, we.MessageName("view:typed"), input.Input)
	})
}

func TestTraversal(t *testing.T) {
	tree := sample()

	t.Run("finds nodes by handle", func(t *testing.T) {
		found, ok := Find(tree, "input")
		require.True(t, ok)
		assert.Equal(t, KindTextInput, found.Kind)

		_, ok = Find(tree, "missing")
		assert.False(t, ok)

		_, ok = Find(tree, "")
		assert.False(t, ok)
	})

	t.Run("lists interactive nodes in order", func(t *testing.T) {
		nodes := Interactive(tree)
		require.Len(t, nodes, 2)
		assert.Equal(t, Handle("press"), nodes[0].Handle)
		assert.Equal(t, Handle("input"), nodes[1].Handle)
	})
}

func TestMessages(t *testing.T) {
	tree := sample()

	t.Run("buttons emit their action", func(t *testing.T) {
		button, _ := Find(tree, "press")
		message, err := button.Pressed()
		require.Nil(t, err)

		assert.Equal(t, we.MessageName("view:pressed"), message.Message)
	})

	t.Run("inputs emit the full value", func(t *testing.T) {
		input, _ := Find(tree, "input")
		message, err := input.Change("buy milk")
		require.Nil(t, err)

		var typed Typed
		require.Nil(t, we.UnmarshalFromData(message.Payload, &typed))
		assert.Equal(t, "buy milk", typed.Value)
	})

	t.Run("text cannot be pressed or edited", func(t *testing.T) {
		text := Text("0")

		_, err := text.Pressed()
		assert.NotNil(t, err)

		_, err = text.Change("x")
		assert.NotNil(t, err)
	})
}

func TestDeterminism(t *testing.T) {
	first, second := sample(), sample()
	assert.True(t, Equal(first, second))

	a, err := Encode(first)
	require.Nil(t, err)
	b, err := Encode(second)
	require.Nil(t, err)

	assert.Equal(t, a, b)
}

func TestLength(t *testing.T) {
	assert.Equal(t, Length("fill-portion(3)"), FillPortion(3))
	assert.Equal(t, uint16(3), FillPortion(3).Portion())
	assert.Equal(t, uint16(1), Fill.Portion())
	assert.Equal(t, uint16(0), Shrink.Portion())

	units, ok := Fixed(20).Units()
	assert.True(t, ok)
	assert.Equal(t, uint16(20), units)

	_, ok = Length("fixed(x)").Units()
	assert.False(t, ok)
}
