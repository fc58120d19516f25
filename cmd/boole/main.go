package main

import (
	"os"

	"github.com/msto63/boole/cmd/boole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
