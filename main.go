// Package main is the entry point for the tonearm application.
package main

import (
	"github.com/samber/lo"
	"github.com/tonearm-cli/tonearm/cmd"
	"github.com/tonearm-cli/tonearm/config"
	"github.com/tonearm-cli/tonearm/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background maintenance of stale log files.
	go log.CollectGarbage()

	cmd.Execute()
}
