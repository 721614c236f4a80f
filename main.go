// Package main is the entry point for the spectra application.
package main

import (
	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/cmd"
	"github.com/spectra-cli/spectra/config"
	"github.com/spectra-cli/spectra/internal/cache"
	"github.com/spectra-cli/spectra/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Expired cache entries are pruned off the hot path.
	go cache.CollectGarbage()

	cmd.Execute()
}
