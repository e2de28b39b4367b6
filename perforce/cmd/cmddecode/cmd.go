package cmddecode

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdutils"
	"github.com/nellielemonier/perforce-plugin/perforce/marshal"
)

type Opts struct {
	// Input is a file with captured p4 -G output, or - for stdin.
	Input string
	// Raw dumps decoded records with go-spew.
	Raw bool
}

func Run(out io.Writer, opts Opts) error {
	data, err := cmdutils.ReadInput(opts.Input)
	if err != nil {
		return err
	}
	recs, err := marshal.DecodeAll(data)
	if opts.Raw {
		spew.Fdump(out, recs)
	} else {
		for i, rec := range recs {
			fmt.Fprintln(out, color.CyanString("record %d", i))
			for _, k := range rec.Keys() {
				fmt.Fprintf(out, "  %v=%v\n", color.YellowString("%s", k), rec[k])
			}
		}
	}
	if err != nil {
		return fmt.Errorf("decoded %d records, then: %w", len(recs), err)
	}
	return nil
}
