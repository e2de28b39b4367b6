package cmdviews

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdutils"
	"github.com/nellielemonier/perforce-plugin/perforce/marshal"
	"github.com/nellielemonier/perforce-plugin/perforce/p4exec"
	"github.com/nellielemonier/perforce-plugin/perforce/views"
)

type Opts struct {
	P4 p4exec.Opts

	// File has one view per line, or - for stdin.
	// When empty the views of the current client are read with p4 -G client -o.
	File string

	// Spec means File holds captured p4 -G client -o output instead of plain lines.
	Spec bool

	// ProjectPath is checked when the client has more than one view.
	ProjectPath string
}

func Run(ctx context.Context, out io.Writer, opts Opts) error {
	lines, err := readViews(ctx, opts)
	if err != nil {
		return err
	}
	for _, p := range views.PathPrefixes(lines) {
		fmt.Fprintln(out, color.GreenString("%s", p))
	}
	if opts.ProjectPath == "" || countViews(lines) < 2 {
		return nil
	}
	if !views.IsProjectPathValidForMultipleViews(opts.ProjectPath) {
		return fmt.Errorf("project path %v is not valid for a client with multiple views, use %v or a label", opts.ProjectPath, views.DepotRootWildcard)
	}
	return nil
}

func readViews(ctx context.Context, opts Opts) ([]string, error) {
	if opts.File == "" {
		data, err := p4exec.Exec(ctx, opts.P4, []string{"client", "-o"})
		if err != nil {
			return nil, err
		}
		return specViews(data)
	}
	data, err := cmdutils.ReadInput(opts.File)
	if err != nil {
		return nil, err
	}
	if opts.Spec {
		return specViews(data)
	}
	var res []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		res = append(res, scanner.Text())
	}
	return res, scanner.Err()
}

func specViews(data []byte) ([]string, error) {
	spec, err := marshal.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse client spec: %w", err)
	}
	if spec["code"] == "error" {
		return nil, fmt.Errorf("p4 client error: %v", spec["data"])
	}
	return ViewsFromSpec(spec), nil
}

// ViewsFromSpec returns View0, View1, ... of a client spec record, stopping at the first missing index.
func ViewsFromSpec(spec marshal.Dict) (res []string) {
	for i := 0; ; i++ {
		v, ok := spec["View"+strconv.Itoa(i)]
		if !ok {
			return
		}
		res = append(res, v)
	}
}

func countViews(lines []string) (res int) {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			res++
		}
	}
	return
}
