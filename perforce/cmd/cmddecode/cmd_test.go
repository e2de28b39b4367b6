package cmddecode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/nellielemonier/perforce-plugin/perforce/marshal"
	"github.com/nellielemonier/perforce-plugin/perforce/pkg/testutil"
)

func init() {
	color.NoColor = true
}

func TestRun(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	data := testutil.Records(
		testutil.WhereRecord("//depot/a", "//ws/a", "/fs/a"),
		testutil.ErrorRecord("not in client view"),
	)
	loc := dirs.WriteFile("out.bin", data)
	out := bytes.NewBuffer(nil)
	err := Run(out, Opts{Input: loc})
	if err != nil {
		t.Fatal(err)
	}
	want := `record 0
  clientFile=//ws/a
  code=stat
  depotFile=//depot/a
  path=/fs/a
record 1
  code=error
  data=not in client view
  generic=17
  severity=2
`
	assert.Equal(t, want, out.String())
}

func TestRunRaw(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	loc := dirs.WriteFile("out.bin", testutil.Record("depotFile", "//depot/a"))
	out := bytes.NewBuffer(nil)
	err := Run(out, Opts{Input: loc, Raw: true})
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, out.String(), `"depotFile": (string) (len=9) "//depot/a"`)
}

func TestRunPartial(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	data := append(testutil.Record("a", "1"), '{', 's', 9, 0, 0, 0)
	loc := dirs.WriteFile("out.bin", data)
	out := bytes.NewBuffer(nil)
	err := Run(out, Opts{Input: loc})
	assert.True(t, errors.Is(err, marshal.ErrTruncatedStream))
	assert.Equal(t, "record 0\n  a=1\n", out.String())
}
