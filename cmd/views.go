package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdutils"
	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdviews"
)

var viewsCmd = &cobra.Command{
	Use:   "views [file]",
	Short: "Prints depot path prefixes of client views and validates the project path",
	Long: `Prints depot path prefixes of client views, skipping exclusions.
Views are read one per line from file, - for stdin, or from p4 -G client -o when no file is passed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cmdviews.Opts{}
		opts.P4 = p4Opts(cmd)
		if len(args) == 1 {
			opts.File = args[0]
		}
		opts.Spec, _ = cmd.Flags().GetBool("spec")
		opts.ProjectPath, _ = cmd.Flags().GetString("project-path")

		err := cmdviews.Run(context.Background(), color.Output, opts)
		if err != nil {
			cmdutils.ExitWithErr(err)
		}
	},
}

func registerViews() {
	cmd := viewsCmd
	addP4Flags(cmd)
	cmd.Flags().Bool("spec", false, "file contains captured p4 -G client -o output")
	cmd.Flags().String("project-path", "", "project path to validate when there are multiple views")
	rootCmd.AddCommand(cmd)
}
