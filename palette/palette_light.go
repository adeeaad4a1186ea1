package palette

import "github.com/themer-cli/themer/theme"

var light = map[theme.Scheme]Palette{
	theme.SchemeDefault: {
		Primary:    "#128C7E",
		Secondary:  "#075E54",
		Accent:     "#25D366",
		Background: Pair{"#FFFFFF", "#F0F2F5"},
		Text:       Pair{"#111B21", "#667781"},
		Border:     "#E9EDEF",
	},
	theme.SchemeBlue: {
		Primary:    "#2563EB",
		Secondary:  "#1E40AF",
		Accent:     "#38BDF8",
		Background: Pair{"#FFFFFF", "#EFF6FF"},
		Text:       Pair{"#0F172A", "#475569"},
		Border:     "#BFDBFE",
	},
	theme.SchemePurple: {
		Primary:    "#7C3AED",
		Secondary:  "#5B21B6",
		Accent:     "#C084FC",
		Background: Pair{"#FFFFFF", "#F5F3FF"},
		Text:       Pair{"#1E1B4B", "#6B7280"},
		Border:     "#DDD6FE",
	},
	theme.SchemeGreen: {
		Primary:    "#059669",
		Secondary:  "#047857",
		Accent:     "#34D399",
		Background: Pair{"#FFFFFF", "#ECFDF5"},
		Text:       Pair{"#064E3B", "#4B5563"},
		Border:     "#A7F3D0",
	},
	theme.SchemeOrange: {
		Primary:    "#EA580C",
		Secondary:  "#C2410C",
		Accent:     "#FBBF24",
		Background: Pair{"#FFFFFF", "#FFF7ED"},
		Text:       Pair{"#431407", "#6B7280"},
		Border:     "#FED7AA",
	},
}
