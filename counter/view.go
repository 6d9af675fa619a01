package counter

import (
	"strconv"

	"github.com/weegigs/wee-counter-go/view"
)

const (
	IncrementButton = view.Handle("increment-button")
	DecrementButton = view.Handle("decrement-button")
	Input           = view.Handle("input")
)

const Placeholder = "What needs to be done?"

func View(state Counter) view.Node {
	return view.Row(
		view.Space(view.FillPortion(1)),
		view.Column(
			view.Text("1").
				WithSize(50).
				WithHorizontalAlignment(view.AlignCenter),
		),
		view.Column(
			view.Space(view.FillPortion(1)),
			view.Button(IncrementButton, "+").
				OnPress(Increment{}).
				WithStyle(ButtonStyle()).
				WithPadding(5),
			view.Text(strconv.FormatInt(int64(state.Value), 10)).
				WithSize(50).
				WithHorizontalAlignment(view.AlignCenter),
			view.Button(DecrementButton, "-").
				OnPress(Decrement{}).
				WithStyle(ButtonStyle()),
			view.TextInput(Input, Placeholder, state.Text, TextChanged{}),
		).WithAlignItems(view.AlignCenter),
	).WithAlignItems(view.AlignCenter)
}
