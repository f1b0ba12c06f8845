package cmd

import (
	"encoding/json"
	"os"
	"reflect"
	"text/template"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/provider"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	addProviderFlag(infoCmd)

	infoCmd.Flags().BoolP("json", "j", false, "Print the description as JSON")
	infoCmd.Flags().BoolP("resolve", "r", false, "Also resolve the current direct uri")
	infoCmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output and exit")
	infoCmd.SetOut(os.Stdout)
}

var infoCmd = &cobra.Command{
	Use:   "info <url>",
	Short: "Describe the video behind a page url",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			reflector.Namer = func(t reflect.Type) string {
				return "video." + t.Name()
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&provider.Info{})))
			return
		}

		h := openHandle(cmd, args[0])
		defer util.Ignore(h.Close)

		info, err := provider.Describe(cmd.Context(), args[0], h, lo.Must(cmd.Flags().GetBool("resolve")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			data, err := info.JSON()
			handleErr(err)
			cmd.Println(string(data))
			return
		}

		t, err := template.New("info").Funcs(map[string]any{
			"faint":  style.Faint,
			"bold":   style.Bold,
			"yellow": style.Fg(color.Yellow),
		}).Parse(`{{ bold .Title }}

  {{ faint "Site" }}      {{ .Site }}
  {{ faint "Format" }}    {{ .Format }}
  {{ faint "File" }}      {{ yellow .FileName }}
{{- if .URI }}
  {{ faint "URI" }}       {{ .URI }}
{{- end }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
