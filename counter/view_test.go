package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/view"
)

func TestView(t *testing.T) {
	state := Counter{Value: -12, Text: "buy milk"}
	tree := View(state)

	t.Run("lays out the label, controls and input", func(t *testing.T) {
		require.Equal(t, view.KindRow, tree.Kind)
		require.Len(t, tree.Children, 3)

		assert.Equal(t, view.KindSpace, tree.Children[0].Kind)
		assert.Equal(t, view.FillPortion(1), tree.Children[0].Width)

		label := tree.Children[1].Children[0]
		assert.Equal(t, "1", label.Content)
		assert.Equal(t, uint16(50), label.Size)

		controls := tree.Children[2]
		require.Len(t, controls.Children, 5)
		assert.Equal(t, view.AlignCenter, controls.AlignItems)

		kinds := make([]view.Kind, len(controls.Children))
		for i, child := range controls.Children {
			kinds[i] = child.Kind
		}
		assert.Equal(t, []view.Kind{view.KindSpace, view.KindButton, view.KindText, view.KindButton, view.KindTextInput}, kinds)
	})

	t.Run("shows the value in decimal", func(t *testing.T) {
		value := tree.Children[2].Children[2]
		assert.Equal(t, "-12", value.Content)
		assert.Equal(t, view.AlignCenter, value.Align)
	})

	t.Run("buttons emit increment and decrement", func(t *testing.T) {
		increment, ok := view.Find(tree, IncrementButton)
		require.True(t, ok)
		assert.Equal(t, "+", increment.Content)
		assert.Equal(t, IncrementMsg, increment.Press.Message)
		assert.Equal(t, uint16(5), increment.Padding)
		assert.Equal(t, ButtonStyle(), *increment.Style)

		decrement, ok := view.Find(tree, DecrementButton)
		require.True(t, ok)
		assert.Equal(t, "-", decrement.Content)
		assert.Equal(t, DecrementMsg, decrement.Press.Message)
		assert.Equal(t, uint16(0), decrement.Padding)
	})

	t.Run("input is prefilled and emits text changed", func(t *testing.T) {
		input, ok := view.Find(tree, Input)
		require.True(t, ok)
		assert.Equal(t, "buy milk", input.Value)
		assert.Equal(t, Placeholder, input.Placeholder)
		assert.Equal(t, TextChangedMsg, input.Input)
	})

	t.Run("is deterministic", func(t *testing.T) {
		assert.True(t, view.Equal(View(state), View(state)))

		first, err := view.Encode(View(state))
		require.Nil(t, err)
		second, err := view.Encode(View(state))
		require.Nil(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("follows the state", func(t *testing.T) {
		assert.False(t, view.Equal(View(state), View(Apply(state, Increment{}))))
	})
}

func TestStyle(t *testing.T) {
	style := ButtonStyle()

	assert.Equal(t, view.Vector{}, style.ShadowOffset)
	assert.Equal(t, view.FromRGB(191, 221, 255), *style.Background)
	assert.Equal(t, float32(25), style.BorderRadius)
	assert.Equal(t, float32(50), style.BorderWidth)
	assert.Equal(t, view.White, style.TextColor)
	assert.Equal(t, view.Black, style.BorderColor)
}

func TestApplication(t *testing.T) {
	assert.Equal(t, "A cool application", Title)

	settings := DefaultSettings()
	assert.Equal(t, uint32(1024), settings.Window.Width)
	assert.Equal(t, uint32(768), settings.Window.Height)
	assert.Equal(t, uint16(20), settings.DefaultTextSize)
}
