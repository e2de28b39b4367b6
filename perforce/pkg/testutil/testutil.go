package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/nellielemonier/perforce-plugin/perforce/marshal"
)

// Record encodes one -G dictionary from alternating string keys and values.
func Record(kv ...string) []byte {
	return marshal.AppendDict(nil, marshal.StringPairs(kv...)...)
}

// Records concatenates records the way p4 -G writes them for multiple arguments.
func Records(recs ...[]byte) (res []byte) {
	for _, r := range recs {
		res = append(res, r...)
	}
	return
}

// WhereRecord is a successful p4 -G where record.
func WhereRecord(depot, workspace, fs string) []byte {
	return Record("code", "stat", "depotFile", depot, "clientFile", workspace, "path", fs)
}

// ErrorRecord is a p4 -G error record with the given data text.
func ErrorRecord(data string) []byte {
	return marshal.AppendDict(nil,
		marshal.Pair{Key: "code", Value: marshal.StringValue("error")},
		marshal.Pair{Key: "data", Value: marshal.StringValue(data)},
		marshal.Pair{Key: "severity", Value: marshal.IntValue(2)},
		marshal.Pair{Key: "generic", Value: marshal.IntValue(17)},
	)
}

type TempDir struct {
	Dir string
}

func (s TempDir) Remove() {
	err := os.RemoveAll(s.Dir)
	if err != nil {
		panic(err)
	}
}

func NewTempDir() TempDir {
	dir, err := ioutil.TempDir("", "perforce-test-")
	if err != nil {
		panic(err)
	}
	return TempDir{Dir: dir}
}

// WriteFile writes data to name inside the temp dir, creating parent dirs.
func (s TempDir) WriteFile(name string, data []byte) string {
	p := filepath.Join(s.Dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0777)
	if err != nil {
		panic(err)
	}
	err = ioutil.WriteFile(p, data, 0666)
	if err != nil {
		panic(err)
	}
	return p
}
