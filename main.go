package main

import (
	"fmt"
	"os"

	"github.com/blockpad/blockpad/internal/cmd"
	"github.com/blockpad/blockpad/internal/log"
	"github.com/blockpad/blockpad/internal/version"
)

func root() int {
	defer log.Flush()

	root := cmd.Root()
	root.Version = version.Full()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(root())
}
