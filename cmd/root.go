package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textflux-site",
	Short: "Build and serve the Textflux product page",
	Long: `textflux-site renders the Textflux landing page: hero, feature and
benefit cards, props and shortcut tables, a one-click copy of the install
command and a responsive mobile menu. Build it as a static site, serve it
live with server-side page sessions, or expose its content to AI agents
over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".textflux.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
