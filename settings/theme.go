package settings

import "github.com/phanxgames/toggle"

// Theme colors the non-switch parts of the screen. Switch colors are fixed
// by their style and do not follow the theme.
type Theme struct {
	Background toggle.Color
	Text       toggle.Color
	Secondary  toggle.Color
	Accent     toggle.Color
}

// LightTheme is used for NightNo and for a light system setting.
var LightTheme = Theme{
	Background: toggle.ColorWhite,
	Text:       toggle.MustParseHex("#1C1B1F"),
	Secondary:  toggle.MustParseHex("#757575"),
	Accent:     toggle.ColorBlack,
}

// DarkTheme is used for NightYes and for a dark system setting.
var DarkTheme = Theme{
	Background: toggle.MustParseHex("#121212"),
	Text:       toggle.MustParseHex("#E6E1E5"),
	Secondary:  toggle.MustParseHex("#9E9E9E"),
	Accent:     toggle.ColorWhite,
}
