package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad/internal/config"
	"github.com/blockpad/blockpad/internal/log"
)

var (
	configPath string
	verbose    bool
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "blockpad",
		Short:         "Block-structured rich-text documents with markdown import and Notion export",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.Set()
			}
		},
	}

	pflags := cmd.PersistentFlags()

	pflags.StringVar(&configPath, "config", config.Path(), "Path to the configuration file.")
	pflags.BoolVar(&verbose, "verbose", false, "Enable debug logging.")

	cmd.AddCommand(importCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(pagesCmd())

	return &cmd
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
