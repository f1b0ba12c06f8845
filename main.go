// Package main is the entry point of the vidkit CLI.
package main

import (
	"github.com/samber/lo"
	"github.com/vidkit/vidkit/cmd"
	"github.com/vidkit/vidkit/config"
	"github.com/vidkit/vidkit/internal/cache"
	"github.com/vidkit/vidkit/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
