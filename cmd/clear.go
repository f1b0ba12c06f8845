package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/util"
)

var clearable = lo.Filter(locations, func(l location, _ int) bool { return l.clearable })

func init() {
	rootCmd.AddCommand(clearCmd)
	for _, l := range clearable {
		l.register(clearCmd.Flags(), "clear "+l.flag)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached pages, logs, history or temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		chosen := selected(cmd.Flags(), clearable)
		if len(chosen) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range chosen {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), l.flag))
			err := util.Delete(l.path())
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), l.name)
		}
	},
}
