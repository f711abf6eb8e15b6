package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/liveout/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := style.GetStyle("error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
