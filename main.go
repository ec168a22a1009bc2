package main

import "github.com/notargets/gohat/cmd"

func main() {
	cmd.Execute()
}
