package cmd

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/pflag"
	"github.com/vidkit/vidkit/where"
)

// location is a path shared by the where and clear commands.
type location struct {
	name  string
	flag  string
	short mo.Option[string]
	path  func() string

	// listed locations are printed by a bare "where".
	listed bool
	// clearable locations get a clear flag.
	clearable bool
}

var locations = []location{
	{"Config", "config", mo.Some("c"), where.Config, true, false},
	{"Sources", "sources", mo.Some("s"), where.Sources, true, false},
	{"Downloads", "downloads", mo.Some("d"), where.Downloads, true, false},
	{"Logs", "logs", mo.Some("l"), where.Logs, true, true},
	{"Cache", "cache", mo.None[string](), where.Cache, false, true},
	{"Pages", "pages", mo.Some("p"), where.Pages, false, true},
	{"History", "history", mo.None[string](), where.History, false, true},
	{"Temp", "temp", mo.None[string](), where.Temp, false, true},
}

func (l location) register(flags *pflag.FlagSet, usage string) {
	if short, ok := l.short.Get(); ok {
		flags.BoolP(l.flag, short, false, usage)
		return
	}
	flags.Bool(l.flag, false, usage)
}

// selected returns the locations whose flag is set.
func selected(flags *pflag.FlagSet, from []location) []location {
	return lo.Filter(from, func(l location, _ int) bool {
		return lo.Must(flags.GetBool(l.flag))
	})
}
