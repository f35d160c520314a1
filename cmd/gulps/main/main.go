package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/gulps/cmd/gulps"
	"github.com/arthur-debert/gulps/pkg/config"
	"github.com/arthur-debert/gulps/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := gulps.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error in red
		renderer := style.NewRenderer(style.ColorEnabled(config.ColorAuto, os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		stop()
		os.Exit(1)
	}
}
