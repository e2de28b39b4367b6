package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nellielemonier/perforce-plugin/perforce/p4exec"
)

var rootCmd = &cobra.Command{
	Use:   "p4where",
	Short: "Maps perforce depot, workspace and local paths using p4 -G output",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	registerWhere()
	registerViews()
	registerDecode()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addP4Flags(cmd *cobra.Command) {
	cmd.Flags().String("p4", "p4", "p4 client binary")
	cmd.Flags().String("port", os.Getenv("P4PORT"), "server address, defaults to P4PORT")
	cmd.Flags().String("user", os.Getenv("P4USER"), "user, defaults to P4USER")
	cmd.Flags().String("client", os.Getenv("P4CLIENT"), "client workspace, defaults to P4CLIENT")
	cmd.Flags().String("charset", os.Getenv("P4CHARSET"), "charset, defaults to P4CHARSET")
}

func p4Opts(cmd *cobra.Command) (res p4exec.Opts) {
	res.P4Command, _ = cmd.Flags().GetString("p4")
	res.Port, _ = cmd.Flags().GetString("port")
	res.User, _ = cmd.Flags().GetString("user")
	res.Client, _ = cmd.Flags().GetString("client")
	res.Charset, _ = cmd.Flags().GetString("charset")
	res.Dir, _ = os.Getwd()
	return
}
