package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmddecode"
	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdutils"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Prints records of captured p4 -G output, - for stdin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cmddecode.Opts{}
		opts.Input = args[0]
		opts.Raw, _ = cmd.Flags().GetBool("raw")

		err := cmddecode.Run(color.Output, opts)
		if err != nil {
			cmdutils.ExitWithErr(err)
		}
	},
}

func registerDecode() {
	cmd := decodeCmd
	cmd.Flags().Bool("raw", false, "dump records with go-spew")
	rootCmd.AddCommand(cmd)
}
