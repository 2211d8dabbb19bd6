package main

import "github.com/fernlang/fern/cmd/fern/commands"

func main() {
	commands.Execute()
}
