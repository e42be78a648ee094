package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "connector",
		Short:         "Ferramentas de operação do conector Shorten.REST",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log.Setup(cfg.App)
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}

	root.AddCommand(newSchemaCommand())
	root.AddCommand(newProbeCommand())
	root.AddCommand(newDataCommand())
	root.AddCommand(newTokenCommand())

	return root
}
