package main

import "github.com/notargets/gospecial/cmd"

func main() {
	cmd.Execute()
}
