package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/gluemodel/internal/version"
)

func newVersionCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, git commit, build date and Glue API version of gluemodel.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if asJSON || opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "gluemodel\n")
			fmt.Fprintf(w, "Version:     %s\n", version.GetFullVersion())
			fmt.Fprintf(w, "Git commit:  %s\n", info.GitCommit)
			fmt.Fprintf(w, "Built:       %s\n", info.BuildDate)
			fmt.Fprintf(w, "Go version:  %s\n", info.GoVersion)
			fmt.Fprintf(w, "API version: %s\n", info.APIVersion)
			if info.SDKVersion != "" {
				fmt.Fprintf(w, "SDK version: %s\n", info.SDKVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")
	return cmd
}
