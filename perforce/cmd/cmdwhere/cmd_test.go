package cmdwhere

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/nellielemonier/perforce-plugin/perforce/pkg/testutil"
	"github.com/nellielemonier/perforce-plugin/perforce/where"
	"github.com/nellielemonier/perforce-plugin/perforce/wherecache"
)

func init() {
	color.NoColor = true
}

func TestRunInput(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	loc := dirs.WriteFile("where.bin", testutil.Records(
		testutil.WhereRecord("//depot/main/a.go", "//ws/main/a.go", "/home/u/ws/main/a.go"),
		testutil.ErrorRecord("//depot/other/b.txt - file(s) not in client view."),
	))

	out := bytes.NewBuffer(nil)
	err := Run(context.Background(), out, Opts{Input: loc})
	if err != nil {
		t.Fatal(err)
	}
	want := "//depot/main/a.go //ws/main/a.go /home/u/ws/main/a.go Go\n" +
		"not in client view\n"
	assert.Equal(t, want, out.String())
}

func TestRunInputServerError(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	loc := dirs.WriteFile("where.bin", testutil.ErrorRecord("Path 'x' is not under client's root."))
	out := bytes.NewBuffer(nil)
	err := Run(context.Background(), out, Opts{Input: loc})
	var se *where.ServerError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "", out.String())
}

func TestRunNoPaths(t *testing.T) {
	err := Run(context.Background(), bytes.NewBuffer(nil), Opts{})
	assert.Error(t, err)
}

func TestRunUsesCache(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	cacheDir := filepath.Join(dirs.Dir, "cache")
	c, err := wherecache.Open(cacheDir)
	if err != nil {
		t.Fatal(err)
	}
	c.Put("//depot/a.go", where.NewWhereMapping("//depot/a.go", "//ws/a.go", "/fs/a.go"))
	err = c.Save()
	if err != nil {
		t.Fatal(err)
	}

	out := bytes.NewBuffer(nil)
	opts := Opts{Paths: []string{"//depot/a.go"}, CacheDir: cacheDir}
	opts.P4.P4Command = "p4-command-that-does-not-exist"
	err = Run(context.Background(), out, opts)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "//depot/a.go //ws/a.go /fs/a.go Go\n", out.String())
}

func TestLocalFiles(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	dirs.WriteFile("a.go", nil)
	dirs.WriteFile("sub/b.c", nil)
	dirs.WriteFile(".p4cache/skip.txt", nil)

	got, err := localFiles(dirs.Dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dirs.Dir, "a.go"),
		filepath.Join(dirs.Dir, "sub", "b.c"),
	}
	assert.Equal(t, want, got)
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "Go", language(where.NewWhereMapping("//depot/a.go", "", "")))
	assert.Equal(t, "-", language(where.NewWhereMapping("//depot/noext", "", "")))
}
