package main

import "github.com/mcpgen/mcpgen/internal/cmd"

func main() {
	cmd.Execute()
}
