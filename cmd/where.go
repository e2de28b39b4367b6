package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdutils"
	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdwhere"
)

var whereCmd = &cobra.Command{
	Use:   "where [paths...]",
	Short: "Prints depot, workspace and local path for each path",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		opts := cmdwhere.Opts{}
		opts.P4 = p4Opts(cmd)
		opts.Paths = args
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Input, _ = cmd.Flags().GetString("input")
		opts.CacheDir, _ = cmd.Flags().GetString("cache")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")
		opts.Profile, _ = cmd.Flags().GetString("profile")

		err := cmdwhere.Run(ctx, color.Output, opts)
		if err != nil {
			cmdutils.ExitWithErr(err)
		}
	},
}

func registerWhere() {
	cmd := whereCmd
	addP4Flags(cmd)
	cmd.Flags().String("dir", "", "query every file under this local dir")
	cmd.Flags().String("input", "", "decode captured p4 -G where output from file, - for stdin, instead of running p4")
	cmd.Flags().String("cache", "", "dir to cache mappings in between runs")
	cmd.Flags().BoolP("verbose", "v", false, "log p4 error records to stderr")
	cmd.Flags().String("profile", "", "one of mem, mutex, cpu, block, trace or empty to disable")
	rootCmd.AddCommand(cmd)
}
