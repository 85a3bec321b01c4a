package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/guardlog/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Stdin:  os.Stdin,
		Stderr: os.Stderr,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
