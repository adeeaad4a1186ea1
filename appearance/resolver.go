package appearance

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/theme"
	"golang.org/x/exp/slices"
)

// Preference is a resolved host appearance.
type Preference struct {
	Dark bool
	// Source names the detector that answered, empty for the fallback.
	Source string
}

// Resolver asks detectors in priority order until one answers.
type Resolver struct {
	detectors []Detector
}

func NewResolver(detectors ...Detector) *Resolver {
	sorted := slices.Clone(detectors)
	slices.SortStableFunc(sorted, func(a, b Detector) int {
		return b.Priority() - a.Priority()
	})

	return &Resolver{detectors: sorted}
}

// Detectors builds detectors by name. Unknown names are logged and skipped.
func Detectors(names []string) []Detector {
	var detectors []Detector

	for _, name := range lo.Uniq(names) {
		factory, ok := factories[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			err := &theme.UnknownValueError{Field: "appearance detector", Value: name, Known: DetectorNames()}
			log.WithError(err).Warn("skipping appearance detector")
			continue
		}
		detectors = append(detectors, factory())
	}

	return detectors
}

// ResolverFromConfig uses the detectors listed in appearance.detectors.
func ResolverFromConfig() *Resolver {
	return NewResolver(Detectors(viper.GetStringSlice(key.AppearanceDetectors))...)
}

// Resolve falls back to light when no detector answers.
func (r *Resolver) Resolve() Preference {
	for _, d := range r.detectors {
		if !d.Available() {
			continue
		}

		if dark, ok := d.Detect(); ok {
			return Preference{Dark: dark, Source: d.Name()}
		}
	}

	return Preference{}
}

// Names returns the detector names in the order they are asked.
func (r *Resolver) Names() []string {
	return lo.Map(r.detectors, func(d Detector, _ int) string {
		return d.Name()
	})
}
