package main

import "github.com/nellielemonier/perforce-plugin/cmd"

func main() {
	cmd.Execute()
}
