package main

import "github.com/forPelevin/vedit/internal/cli"

func main() {
	cli.Main()
}
