package main

import (
	"fmt"
	"os"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/cmd"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/logging"
)

func main() {
	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(settings)
	defer logging.Close()

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "command error: %v\n", err)
		os.Exit(1)
	}
}
