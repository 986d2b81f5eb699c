package main

import (
	"os"

	"finance-calculator/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
