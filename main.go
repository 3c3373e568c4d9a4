package main

import (
	"github.com/diivanand/AdventOfCode2025/cmd"
)

func main() {
	cmd.Execute()
}
