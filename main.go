package main

import (
	"os"

	"github.com/smartresume/resume-matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
