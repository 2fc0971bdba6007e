package main

import (
	"os"

	"github.com/getlawrence/insert-filename/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
