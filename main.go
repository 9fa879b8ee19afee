package main

import "github.com/gapwg/gaplint/cmd"

func main() {
	cmd.Execute()
}
