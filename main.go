package main

import "github.com/feedarr/feedarr/cmd"

func main() {
	cmd.Execute()
}
