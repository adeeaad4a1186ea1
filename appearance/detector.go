// Package appearance reports whether the host prefers a dark color scheme
// and notifies listeners when that preference flips.
package appearance

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/themer-cli/themer/constant"
	"golang.org/x/term"
)

// EnvAppearance forces the detected appearance when set to "dark" or "light".
const EnvAppearance = "THEMER_APPEARANCE"

// Detector names accepted in the appearance.detectors setting.
const (
	DetectorEnv       = "env"
	DetectorGSettings = "gsettings"
	DetectorMacOS     = "macos"
	DetectorTerminal  = "terminal"
)

// Detector asks one host facility for the light/dark preference.
type Detector interface {
	Name() string
	// Priority orders detectors; higher runs first.
	Priority() int
	// Available reports whether the facility exists on this host.
	Available() bool
	// Detect returns ok=false when the facility gave no usable answer.
	Detect() (dark bool, ok bool)
}

const commandTimeout = time.Second

// runner executes a command and returns its standard output.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func run(r runner, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return r(ctx, name, args...)
}

// Env reads EnvAppearance.
type Env struct{}

func (Env) Name() string  { return DetectorEnv }
func (Env) Priority() int { return 100 }

func (Env) Available() bool {
	return os.Getenv(EnvAppearance) != ""
}

func (Env) Detect() (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvAppearance))) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// GSettings reads the GNOME color-scheme key.
type GSettings struct {
	run runner
}

func NewGSettings() *GSettings {
	return &GSettings{run: execRunner}
}

func (*GSettings) Name() string  { return DetectorGSettings }
func (*GSettings) Priority() int { return 50 }

func (*GSettings) Available() bool {
	if runtime.GOOS != constant.Linux && runtime.GOOS != constant.FreeBSD {
		return false
	}
	_, err := exec.LookPath("gsettings")
	return err == nil
}

func (g *GSettings) Detect() (bool, bool) {
	out, err := run(g.run, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}

	switch strings.Trim(strings.TrimSpace(string(out)), "'") {
	case "prefer-dark":
		return true, true
	case "prefer-light", "default":
		return false, true
	default:
		return false, false
	}
}

// MacOS reads AppleInterfaceStyle. The key only exists in dark mode.
type MacOS struct {
	run runner
}

func NewMacOS() *MacOS {
	return &MacOS{run: execRunner}
}

func (*MacOS) Name() string  { return DetectorMacOS }
func (*MacOS) Priority() int { return 50 }

func (*MacOS) Available() bool {
	return runtime.GOOS == constant.Darwin
}

func (m *MacOS) Detect() (bool, bool) {
	out, err := run(m.run, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, true
		}
		return false, false
	}

	return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), true
}

// Terminal queries the terminal background color.
type Terminal struct{}

func (Terminal) Name() string  { return DetectorTerminal }
func (Terminal) Priority() int { return 10 }

func (Terminal) Available() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (Terminal) Detect() (bool, bool) {
	return lipgloss.HasDarkBackground(), true
}

var factories = map[string]func() Detector{
	DetectorEnv:       func() Detector { return Env{} },
	DetectorGSettings: func() Detector { return NewGSettings() },
	DetectorMacOS:     func() Detector { return NewMacOS() },
	DetectorTerminal:  func() Detector { return Terminal{} },
}

// DetectorNames lists the names accepted by Detectors.
func DetectorNames() []string {
	return []string{DetectorEnv, DetectorGSettings, DetectorMacOS, DetectorTerminal}
}
