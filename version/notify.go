package version

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
)

// ReleasePage is where release notes for v are published.
func ReleasePage(v string) string {
	return "https://github.com/vidkit/vidkit/releases/tag/v" + v
}

// Notify prints a notice when cli.version_check is on and a newer release exists.
// Lookup failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a new version...")
	latest, err := Latest(context.Background())
	erase()
	if err != nil {
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Printf("\n%s vidkit %s is out %s\n%s\n\n",
		style.Fg(color.Green)(icon.Get(icon.Download)),
		style.Bold(latest),
		style.Faint("(running "+constant.Version+")"),
		style.Faint(ReleasePage(latest)),
	)
}
