package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gulps/cmd/gulps"
)

func main() {
	rootCmd := gulps.NewRootCmd()

	err := doc.GenMan(rootCmd, gulps.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
