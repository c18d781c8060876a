package cmd

import (
	"github.com/spf13/cobra"

	"github.com/textflux/textflux-site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize textflux-site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the product page and generates a .textflux.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
