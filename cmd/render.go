package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/samber/lo"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/provider"
	"github.com/themer-cli/themer/style"
)

// snapshotJSON is the machine-readable form of provider.Snapshot.
type snapshotJSON struct {
	Mode        string          `json:"mode"`
	ColorScheme string          `json:"colorScheme"`
	UIDesign    string          `json:"uiDesign"`
	IsDark      bool            `json:"isDark"`
	Colors      palette.Palette `json:"colors"`
	Custom      bool            `json:"customPalette"`
}

func toJSON(s provider.Snapshot) snapshotJSON {
	return snapshotJSON{
		Mode:        s.Mode.String(),
		ColorScheme: s.Scheme.String(),
		UIDesign:    s.Design.String(),
		IsDark:      s.IsDark,
		Colors:      s.Colors,
		Custom:      s.Custom.IsPresent(),
	}
}

// printSnapshot writes a human-readable summary, followed by swatches when swatches is set.
func printSnapshot(out io.Writer, s provider.Snapshot, swatches bool) {
	styles := style.Build(s.Colors, s.Design)

	effective := "light"
	if s.IsDark {
		effective = "dark"
	}

	label := func(name string) string {
		return style.Faint(padding.String(name, 8))
	}

	_, _ = fmt.Fprintf(out, "%s%s %s %s\n", label("Mode"), icon.Mode(s.Mode), style.Bold(s.Mode.String()), style.Faint("("+effective+")"))
	_, _ = fmt.Fprintf(out, "%s%s %s\n", label("Scheme"), icon.Get(icon.Palette), styles.RenderTitle(s.Scheme.String()))
	_, _ = fmt.Fprintf(out, "%s%s %s\n", label("Design"), icon.Get(icon.Design), style.Fg(color.Cyan)(s.Design.String()))

	if swatches {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, indent.String(renderPalette(s.Colors), 2))
	}
}

// renderPalette lists every role of p with a swatch.
func renderPalette(p palette.Palette) string {
	width := lo.Max(lo.Map(p.Colors(), func(r palette.Role, _ int) int { return len(r.Name) }))

	lines := lo.Map(p.Colors(), func(r palette.Role, _ int) string {
		return style.Faint(padding.String(r.Name, uint(width+2))) + style.Swatch(r.Hex)
	})

	return strings.Join(lines, "\n")
}

func jsonLine(out io.Writer, v any) error {
	return json.NewEncoder(out).Encode(v)
}

func success(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, "%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}
