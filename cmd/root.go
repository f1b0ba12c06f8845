// Package cmd implements the vidkit command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/provider"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
	"github.com/vidkit/vidkit/version"
	"github.com/vidkit/vidkit/video"
	"github.com/vidkit/vidkit/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("source", "S", []string{}, "Sources to try first when resolving a url")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completeSources))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Fetch content through a Chrome TLS fingerprint")
	lo.Must0(viper.BindPFlag(key.NetworkFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd is the entry point of the CLI.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Resolve and download videos from hosting sites",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve and download videos from hosting sites"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func completeSources(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

// openHandle resolves the video behind rawURL, honoring the --provider flag when cmd has one.
func openHandle(cmd *cobra.Command, rawURL string) *video.Handle {
	var (
		h   *video.Handle
		err error
	)

	name, _ := cmd.Flags().GetString("provider")
	if name != "" {
		h, err = provider.DiscoverWith(cmd.Context(), name, rawURL)
	} else {
		h, err = provider.Discover(cmd.Context(), rawURL)
	}

	handleErr(err)
	return h
}

func addProviderFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("provider", "p", "", "Resolve the url with this provider instead of the first matching one")
	lo.Must0(cmd.RegisterFlagCompletionFunc("provider", completeSources))
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
