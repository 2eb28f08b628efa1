package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkshell/cmd/linkshell"
	"github.com/arthur-debert/linkshell/internal/version"
)

func main() {
	rootCmd := linkshell.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LINKSHELL",
		Section: "1",
		Source:  "linkshell " + version.Version,
		Manual:  "linkshell manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
