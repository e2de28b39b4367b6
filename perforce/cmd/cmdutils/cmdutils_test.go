package cmdutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nellielemonier/perforce-plugin/perforce/pkg/testutil"
)

func TestReadInput(t *testing.T) {
	dirs := testutil.NewTempDir()
	defer dirs.Remove()

	loc := dirs.WriteFile("out.bin", []byte{'{', '0'})
	got, err := ReadInput(loc)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []byte{'{', '0'}, got)

	_, err = ReadInput(loc + ".missing")
	assert.Error(t, err)
}

func TestEnableProfilingUnknown(t *testing.T) {
	_, err := EnableProfiling("gpu")
	assert.Error(t, err)
}
