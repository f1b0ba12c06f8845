package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/provider"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
	"github.com/vidkit/vidkit/where"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom site resolvers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesListCmd.SetOut(os.Stdout)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print names only, one per line")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Only list Lua resolvers")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Only list built-in resolvers")
	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List site resolvers in the order they are tried",
	Run: func(cmd *cobra.Command, args []string) {
		onlyCustom := lo.Must(cmd.Flags().GetBool("custom"))
		onlyBuiltin := lo.Must(cmd.Flags().GetBool("builtin"))
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		shown := lo.Filter(provider.All(), func(p *provider.Provider, _ int) bool {
			return !(onlyCustom && !p.IsCustom) && !(onlyBuiltin && p.IsCustom)
		})

		for _, p := range shown {
			if raw {
				cmd.Println(p.Name)
				continue
			}

			kind := icon.Get(icon.Go)
			if p.IsCustom {
				kind = icon.Get(icon.Lua)
			}
			cmd.Printf("%s %s\n", kind, style.Fg(color.HiBlue)(p.Name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <name>...",
	Short: "Delete Lua resolvers from the sources directory",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := lo.Map(provider.Customs(), func(p *provider.Provider, _ int) string { return p.Name })
		return lo.Without(names, args...), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			p, ok := provider.Get(name)
			if !ok || !p.IsCustom {
				handleErr(fmt.Errorf("no custom resolver named %s", style.Fg(color.Red)(name)))
			}

			path := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)
}

// sourcesInstallCmd downloads Lua resolver scripts into the sources directory.
var sourcesInstallCmd = &cobra.Command{
	Use:   "install <url>...",
	Short: "Install or update Lua resolver scripts from urls",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, rawURL := range args {
			erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), rawURL))
			target, updated, err := provider.Install(cmd.Context(), rawURL)
			erase()
			handleErr(err)

			if updated {
				fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(target))
			} else {
				fmt.Printf("%s %s is up to date\n", icon.Get(icon.Success), style.Fg(color.Yellow)(target))
			}
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Name of the new resolver")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Base URL of the site the resolver handles")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a Lua resolver script.
var sourcesGenCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"gen"},
	Short:   "Scaffold a new Lua resolver script",
	Long:    `Generate a Lua resolver script defining Match, VideoInfo and ResolveURI.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name         string
			URL          string
			MatchFn      string
			VideoInfoFn  string
			ResolveURIFn string
			Author       string
		}{
			Name:         lo.Must(cmd.Flags().GetString("name")),
			URL:          lo.Must(cmd.Flags().GetString("url")),
			MatchFn:      constant.MatchFn,
			VideoInfoFn:  constant.VideoInfoFn,
			ResolveURIFn: constant.ResolveURIFn,
			Author:       author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+provider.CustomProviderExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
