package main

import "github.com/notargets/cartmesh/cmd"

func main() {
	cmd.Execute()
}
