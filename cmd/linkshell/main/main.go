package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/linkshell/cmd/linkshell"
	"github.com/arthur-debert/linkshell/pkg/style"
)

func main() {
	rootCmd := linkshell.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer("auto")
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(linkshell.ExitCode(err))
	}
}
