// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amanKp27/toDoList/internal/app"
	"github.com/amanKp27/toDoList/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	rootCmd := cli.NewRootCommand(app.New, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
