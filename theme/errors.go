package theme

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// UnknownValueError reports a mode, scheme or design outside the known set.
type UnknownValueError struct {
	Field string
	Value string
	Known []string
}

func (e *UnknownValueError) Error() string {
	msg := fmt.Sprintf("unknown %s %q (expected one of %s)", e.Field, e.Value, strings.Join(e.Known, ", "))
	if s := e.Suggestion(); s != "" {
		msg += fmt.Sprintf(", did you mean %q?", s)
	}
	return msg
}

// Suggestion returns the closest known value, or "" when nothing is close.
func (e *UnknownValueError) Suggestion() string {
	if len(e.Known) == 0 || strings.TrimSpace(e.Value) == "" {
		return ""
	}

	value := strings.ToLower(strings.TrimSpace(e.Value))
	closest := lo.MinBy(e.Known, func(a, b string) bool {
		return levenshtein.Distance(value, a) < levenshtein.Distance(value, b)
	})

	if levenshtein.Distance(value, closest) > len(closest)/2 {
		return ""
	}
	return closest
}
