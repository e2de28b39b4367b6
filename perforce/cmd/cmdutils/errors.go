package cmdutils

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func ExitWithErr(err error) {
	fmt.Fprintln(color.Output, color.RedString("failed with error: %v", err.Error()))
	os.Exit(1)
}
