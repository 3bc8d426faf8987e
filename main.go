package main

import "github.com/gaurav-prasanna/editmark/cmd"

func main() {
	cmd.Execute()
}
