package cmdutils

import (
	"io/ioutil"
	"os"
)

// ReadInput reads the whole file at loc, or stdin when loc is "-".
func ReadInput(loc string) ([]byte, error) {
	if loc == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(loc)
}
