package view

type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{R: 0, G: 0, B: 0, A: 1}
)

func FromRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

type Vector struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// ButtonStyle is how an active button is drawn. Values are passed to the
// host as given.
type ButtonStyle struct {
	ShadowOffset Vector  `json:"shadowOffset"`
	Background   *Color  `json:"background,omitempty"`
	BorderRadius float32 `json:"borderRadius"`
	BorderWidth  float32 `json:"borderWidth"`
	BorderColor  Color   `json:"borderColor"`
	TextColor    Color   `json:"textColor"`
}
