package cmd

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// completeFrom returns a completion func offering names that fuzzily match the typed prefix.
func completeFrom(names func() []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		return fuzzy.FindFold(toComplete, names()), cobra.ShellCompDirectiveNoFileComp
	}
}

// expand resolves an abbreviation like "purp" to the single name it fuzzily
// matches. Ambiguous or unmatched input is returned unchanged so that
// parsing reports it.
func expand(input string, names []string) string {
	if lo.Contains(names, input) {
		return input
	}

	ranks := fuzzy.RankFindFold(input, names)
	if len(ranks) != 1 {
		return input
	}

	return ranks[0].Target
}

func stringsOf[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return string(v) })
}
