package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotctl/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
