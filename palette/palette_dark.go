package palette

import "github.com/themer-cli/themer/theme"

var dark = map[theme.Scheme]Palette{
	theme.SchemeDefault: {
		Primary:    "#00A884",
		Secondary:  "#005C4B",
		Accent:     "#25D366",
		Background: Pair{"#111B21", "#202C33"},
		Text:       Pair{"#E9EDEF", "#8696A0"},
		Border:     "#2A3942",
	},
	theme.SchemeBlue: {
		Primary:    "#60A5FA",
		Secondary:  "#3B82F6",
		Accent:     "#7DD3FC",
		Background: Pair{"#0B1120", "#172033"},
		Text:       Pair{"#E2E8F0", "#94A3B8"},
		Border:     "#1E3A8A",
	},
	theme.SchemePurple: {
		Primary:    "#A78BFA",
		Secondary:  "#8B5CF6",
		Accent:     "#D8B4FE",
		Background: Pair{"#13111C", "#1E1B2E"},
		Text:       Pair{"#EDE9FE", "#A1A1AA"},
		Border:     "#4C1D95",
	},
	theme.SchemeGreen: {
		Primary:    "#34D399",
		Secondary:  "#10B981",
		Accent:     "#6EE7B7",
		Background: Pair{"#0B1410", "#132A20"},
		Text:       Pair{"#D1FAE5", "#9CA3AF"},
		Border:     "#065F46",
	},
	theme.SchemeOrange: {
		Primary:    "#FB923C",
		Secondary:  "#F97316",
		Accent:     "#FCD34D",
		Background: Pair{"#1A0F07", "#2A1A0E"},
		Text:       Pair{"#FFEDD5", "#A8A29E"},
		Border:     "#7C2D12",
	},
}
