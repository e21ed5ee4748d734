package main

import "github.com/VirtualBrainLab/probe-library/cmd"

func main() {
	cmd.Execute()
}
