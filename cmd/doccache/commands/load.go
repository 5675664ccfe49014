package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/doccache/internal/app"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [paths...]",
		Short: "Load documents and print them as canonical JSON",
		Long: `Load documents through the cache and print each one as canonical JSON.

Paths starting with http:// or https:// are fetched. Other paths are read from
the bundled resources, where a leading "/" denotes the resource root, unless
--absolute is set, in which case they are read from the filesystem.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			absolute, _ := cmd.Flags().GetBool("absolute")
			reload, _ := cmd.Flags().GetBool("reload")
			parserName, _ := cmd.Flags().GetString("parser")

			report, err := c.app.Load(cmd.Context(), args, app.LoadOptions{
				Absolute: absolute,
				Reload:   reload,
				Parser:   parserName,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range report.Results {
				_, _ = fmt.Fprintf(out, "%s: %s\n", result.Path, result.Document)
			}
			_, _ = fmt.Fprintf(out, "cached documents: %d\n", report.CacheSize)
			return nil
		},
	}
	cmd.Flags().BoolP("absolute", "a", false, "Treat paths as filesystem paths")
	cmd.Flags().BoolP("reload", "r", false, "Bypass cached documents and load again")
	cmd.Flags().StringP("parser", "p", "", "Document syntax: json or yaml (default from config)")
	return cmd
}
