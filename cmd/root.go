package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/cmd/serve"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wellatlas",
		Short: "WellAtlas field site record keeper",
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(serve.Command(settings))

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.DataPath, "data", viper.GetString("datapath"), "Directory for the database file")
	rootCmd.PersistentFlags().StringVar(&settings.UploadPath, "uploads", viper.GetString("uploadpath"), "Directory for uploaded photos")
}
