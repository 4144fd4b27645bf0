package main

import "github.com/tlowell/objstore/cmd"

func main() {
	cmd.Execute()
}
