package entity

// Theme is the declarative palette applied to rendered output
type Theme struct {
	Name             string `json:"name"`
	Background       string `json:"background"`
	Foreground       string `json:"foreground"`
	ButtonBackground string `json:"button_background"`
	Dark             bool   `json:"dark"`
}

var (
	// LightTheme is the default palette
	LightTheme = Theme{
		Name:             "light",
		Background:       "#f0f8ff",
		Foreground:       "black",
		ButtonBackground: "#4da6ff",
	}

	// DarkTheme is the alternate palette
	DarkTheme = Theme{
		Name:             "dark",
		Background:       "#2c3e50",
		Foreground:       "white",
		ButtonBackground: "#34495e",
		Dark:             true,
	}
)

// ThemeFor returns the palette for the given mode
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}
