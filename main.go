// Package main is the entry point for the themer CLI.
package main

import (
	"github.com/samber/lo"
	"github.com/themer-cli/themer/cmd"
	"github.com/themer-cli/themer/config"
	"github.com/themer-cli/themer/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
