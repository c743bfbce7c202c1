package main

import (
	"context"
	"os"

	"github.com/wesleyorama2/reqbuild/internal/cli"
	"github.com/wesleyorama2/reqbuild/internal/logger"
)

// Main is the entry point for the application
// It's exported to make it testable
func Main() int {
	defer func() {
		_ = logger.Logger().Sync()
	}()

	if err := cli.Execute(context.Background()); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(Main())
}
