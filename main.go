package main

import "github.com/mbu09a/Code-Xanadu/cmd"

func main() {
	cmd.Execute()
}
