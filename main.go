package main

import "github.com/bgraf/walkmap/cmd"

func main() {
	cmd.Execute()
}
