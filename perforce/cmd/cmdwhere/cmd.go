package cmdwhere

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/karrick/godirwalk"
	enry "gopkg.in/src-d/enry.v1"

	"github.com/nellielemonier/perforce-plugin/perforce/cmd/cmdutils"
	"github.com/nellielemonier/perforce-plugin/perforce/p4exec"
	"github.com/nellielemonier/perforce-plugin/perforce/pkg/logger"
	"github.com/nellielemonier/perforce-plugin/perforce/where"
	"github.com/nellielemonier/perforce-plugin/perforce/wherecache"
)

type Opts struct {
	P4 p4exec.Opts

	// Paths are passed to p4 where as is. Depot, client and local syntax all work.
	Paths []string

	// Dir adds every file under this local dir to Paths. Dot dirs are skipped.
	Dir string

	// Input is a file with captured p4 -G where output, or - for stdin.
	// When set p4 is not run and Paths, Dir and CacheDir are ignored.
	Input string

	// CacheDir keeps mappings between runs. Each uncached path is queried separately.
	CacheDir string

	// Verbose logs p4 error records.
	Verbose bool

	// Profile set to one of mem, mutex, cpu, block, trace to enable profiling.
	Profile string
}

func Run(ctx context.Context, out io.Writer, opts Opts) error {
	if opts.Profile != "" {
		onEnd, err := cmdutils.EnableProfiling(opts.Profile)
		if err != nil {
			return err
		}
		defer onEnd()
	}

	parser := where.Parser{Logger: logger.NewDefaultLogger(os.Stderr, opts.Verbose)}

	if opts.Input != "" {
		data, err := cmdutils.ReadInput(opts.Input)
		if err != nil {
			return err
		}
		res, err := parser.ParseAll(data)
		printMappings(out, res)
		return err
	}

	paths := append([]string{}, opts.Paths...)
	if opts.Dir != "" {
		files, err := localFiles(opts.Dir)
		if err != nil {
			return err
		}
		paths = append(paths, files...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths to query, pass paths or --dir")
	}

	if opts.CacheDir == "" {
		data, err := p4exec.Where(ctx, opts.P4, paths...)
		if err != nil {
			return err
		}
		res, err := parser.ParseAll(data)
		printMappings(out, res)
		return err
	}

	res, err := whereCached(ctx, parser, opts, paths)
	printMappings(out, res)
	return err
}

func whereCached(ctx context.Context, parser where.Parser, opts Opts, paths []string) (res []where.WhereMapping, rerr error) {
	cache, err := wherecache.Open(opts.CacheDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		err := cache.Save()
		if rerr == nil {
			rerr = err
		}
	}()
	for _, p := range paths {
		if m, ok := cache.Get(p); ok {
			res = append(res, m)
			continue
		}
		data, err := p4exec.Where(ctx, opts.P4, p)
		if err != nil {
			return res, err
		}
		m, err := parser.Parse(data)
		if err != nil {
			return res, err
		}
		cache.Put(p, m)
		res = append(res, m)
	}
	return res, nil
}

func localFiles(dir string) (res []string, _ error) {
	err := godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(loc string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if loc != dir && strings.HasPrefix(filepath.Base(loc), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			res = append(res, loc)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("can't list files in %v: %w", dir, err)
	}
	return res, nil
}

func printMappings(out io.Writer, res []where.WhereMapping) {
	for _, m := range res {
		if m.DepotPath() == "" && m.WorkspacePath() == "" && m.FilesystemPath() == "" {
			fmt.Fprintln(out, color.YellowString("not in client view"))
			continue
		}
		fmt.Fprintf(out, "%v %v %v %v\n", color.GreenString("%s", m.DepotPath()), m.WorkspacePath(), color.CyanString("%s", m.FilesystemPath()), color.MagentaString("%s", language(m)))
	}
}

func language(m where.WhereMapping) string {
	for _, p := range []string{m.FilesystemPath(), m.DepotPath()} {
		if p == "" {
			continue
		}
		if lang, _ := enry.GetLanguageByExtension(p); lang != "" {
			return lang
		}
	}
	return "-"
}
