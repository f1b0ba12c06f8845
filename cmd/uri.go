package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/open"
	"github.com/vidkit/vidkit/util"
)

func init() {
	rootCmd.AddCommand(uriCmd)
	addProviderFlag(uriCmd)
	uriCmd.Flags().Bool("play", false, "Open the uri with the configured player")
	uriCmd.SetOut(os.Stdout)
}

var uriCmd = &cobra.Command{
	Use:   "uri <url>",
	Short: "Print the current direct uri of the video behind a page url",
	Long: `Print the current direct uri of the video behind a page url.
Direct uris are usually signed and expire, so the uri is resolved anew on every run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h := openHandle(cmd, args[0])
		defer util.Ignore(h.Close)

		uri, err := h.ResolveURI(cmd.Context())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("play")) {
			handleErr(open.Start(uri, viper.GetString(key.PlayerApp)))
			return
		}
		cmd.Println(uri)
	},
}
