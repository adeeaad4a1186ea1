package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/appearance"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/provider"
	"github.com/themer-cli/themer/storage"
)

// session is the provider opened for the running command.
var session struct {
	slot     storage.Slot
	source   appearance.Source
	provider *provider.Provider
}

// openProvider builds the slot, appearance source and provider selected by
// flags and settings and returns a context carrying the provider.
func openProvider(cmd *cobra.Command) (context.Context, error) {
	slot, err := storage.Open(viper.GetString(key.StorageBackend))
	if err != nil {
		return nil, err
	}

	override := lo.Must(cmd.Flags().GetString("appearance"))
	source, err := appearance.Open(override)
	if err != nil {
		return nil, err
	}

	session.slot = slot
	session.source = source
	session.provider = provider.New(slot, source)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return provider.WithProvider(ctx, session.provider), nil
}

// closeProvider releases the provider and stops the appearance source.
func closeProvider() {
	if session.provider != nil {
		session.provider.Close()
		session.provider = nil
	}

	if session.source != nil {
		session.source.Stop()
		session.source = nil
	}
}
