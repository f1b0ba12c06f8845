package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/download"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/history"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/open"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
)

func init() {
	rootCmd.AddCommand(getCmd)
	addProviderFlag(getCmd)

	getCmd.Flags().StringP("output", "o", "", "Directory to save the video to")
	lo.Must0(viper.BindPFlag(key.DownloadDirectory, getCmd.Flags().Lookup("output")))

	getCmd.Flags().BoolP("stream", "s", true, "Write content as it arrives instead of buffering it")
	lo.Must0(viper.BindPFlag(key.DownloadStream, getCmd.Flags().Lookup("stream")))

	getCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file without asking")
	lo.Must0(viper.BindPFlag(key.DownloadOverwrite, getCmd.Flags().Lookup("force")))

	getCmd.Flags().Bool("play", false, "Open the saved file with the configured player")
}

var getCmd = &cobra.Command{
	Use:     "get <url>",
	Short:   "Download the video behind a page url",
	Example: "  " + "vidkit get https://example.com/clips/sunset.mp4",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h := openHandle(cmd, args[0])
		defer util.Ignore(h.Close)

		opts := download.DefaultOptions()
		target := download.Target(h, opts)

		if !opts.Overwrite && download.Interactive() && lo.Must(filesystem.API().Exists(target)) {
			var overwrite bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", target),
				Default: false,
			}, &overwrite))

			if !overwrite {
				return
			}
			opts.Overwrite = true
		}

		save := download.Save
		if viper.GetBool(key.DownloadProgress) {
			save = download.SaveWithProgress
		}

		path, err := save(cmd.Context(), h, opts)
		if errors.Is(err, download.ErrExists) {
			err = fmt.Errorf("%w, use --force to overwrite", err)
		}
		handleErr(err)

		fmt.Printf("%s saved %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(path))

		if viper.GetBool(key.DownloadHistory) {
			if err := history.Record(args[0], h, path); err != nil {
				log.Warn(err)
			}
		}

		if lo.Must(cmd.Flags().GetBool("play")) {
			handleErr(open.Start(path, viper.GetString(key.PlayerApp)))
		}
	},
}
