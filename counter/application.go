package counter

const Title = "A cool application"

type Window struct {
	Width       uint32 `json:"width"`
	Height      uint32 `json:"height"`
	Resizable   bool   `json:"resizable"`
	Decorations bool   `json:"decorations"`
}

// Settings are handed to the host once at startup.
type Settings struct {
	Window          Window `json:"window"`
	DefaultTextSize uint16 `json:"defaultTextSize"`
	Antialiasing    bool   `json:"antialiasing"`
}

func DefaultSettings() Settings {
	return Settings{
		Window: Window{
			Width:       1024,
			Height:      768,
			Resizable:   true,
			Decorations: true,
		},
		DefaultTextSize: 20,
		Antialiasing:    false,
	}
}
