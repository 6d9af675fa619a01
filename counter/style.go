package counter

import "github.com/weegigs/wee-counter-go/view"

// ButtonStyle is the look of both counter buttons. The colour channels and
// border width are kept exactly as configured.
func ButtonStyle() view.ButtonStyle {
	background := view.FromRGB(191, 221, 255)

	return view.ButtonStyle{
		ShadowOffset: view.Vector{X: 0, Y: 0},
		Background:   &background,
		BorderRadius: 25,
		BorderWidth:  50,
		TextColor:    view.White,
		BorderColor:  view.Black,
	}
}
