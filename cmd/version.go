package cmd

import (
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
	"github.com/vidkit/vidkit/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("check", "c", false, "Query the latest release and compare it with this build")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		rows := [][2]string{
			{"Version", constant.Version},
			{"Revision", constant.Revision},
			{"Built at", strings.TrimSpace(constant.BuiltAt)},
			{"Built by", constant.BuiltBy},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
			{"Go", runtime.Version()},
		}

		label := style.New().Width(10).Faint(true).Render
		lines := lo.Map(rows, func(r [2]string, _ int) string {
			return lipgloss.JoinHorizontal(lipgloss.Top, label(r[0]), style.Bold(r[1]))
		})

		cmd.Println(style.Fg(color.Purple)(constant.App))
		cmd.Println(lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines, "\n")))

		if !lo.Must(cmd.Flags().GetBool("check")) {
			defer version.Notify()
			return
		}

		erase := util.PrintErasable(icon.Get(icon.Progress) + " Querying the latest release...")
		latest, err := version.Latest(cmd.Context())
		erase()
		handleErr(err)

		comp, err := version.Compare(latest, constant.Version)
		handleErr(err)

		cmd.Println()
		if comp > 0 {
			cmd.Printf("%s %s is available\n%s\n", icon.Get(icon.Download), style.Bold(latest), style.Faint(version.ReleasePage(latest)))
			return
		}
		cmd.Println(icon.Get(icon.Success) + " Up to date")
	},
}
