package main

import (
	"os"

	"github.com/jinchengKuang/jay-kuang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
