package cmdutils

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/profile"
)

// EnableProfiling starts a profile of the given kind. Call onEnd before exit to write it out.
func EnableProfiling(kind string) (onEnd func(), _ error) {
	var mode func(*profile.Profile)
	switch kind {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	case "block":
		mode = profile.BlockProfile
	case "mutex":
		mode = profile.MutexProfile
	default:
		return nil, fmt.Errorf("unexpected profile: %v, use one of mem, mutex, cpu, block, trace", kind)
	}

	dir, err := ioutil.TempDir("", "p4where-profile")
	if err != nil {
		return nil, err
	}
	stop := profile.Start(mode, profile.ProfilePath(dir), profile.Quiet).Stop

	return func() {
		stop()
		fn := filepath.Join(dir, kind+".pprof")
		fmt.Printf("to view profile, run `go tool pprof --pdf %s`\n", fn)
	}, nil
}
