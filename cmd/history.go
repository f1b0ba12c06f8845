package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/history"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print entries as JSON")
	historyCmd.Flags().StringArrayP("remove", "r", []string{}, "Forget the entry for this page url")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved videos",
	Run: func(cmd *cobra.Command, args []string) {
		if pages := lo.Must(cmd.Flags().GetStringArray("remove")); len(pages) > 0 {
			for _, page := range pages {
				handleErr(history.Remove(page))
				fmt.Printf("%s forgot %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(page))
			}
			return
		}

		entries, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		for i, e := range entries {
			cmd.Printf("%s %s\n", style.Bold(e.Title), style.Faint(e.SavedAt.Format("2006-01-02 15:04")))
			cmd.Printf("  %s %s\n", icon.Get(icon.Link), e.Page)
			cmd.Printf("  %s\n", style.Fg(color.Yellow)(e.Path))

			if i < len(entries)-1 {
				cmd.Println()
			}
		}
	},
}
