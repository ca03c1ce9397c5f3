package cmd

import (
	"github.com/bgraf/walkmap/cmd/serve"
	"github.com/bgraf/walkmap/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve map documents and the pages showing them",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address (default :8000)")
	serveCmd.Flags().StringP("maps-dir", "m", "", "Directory containing the <name>.json map documents")

	if err := viper.BindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag(config.KeyMapsDirectory, serveCmd.Flags().Lookup("maps-dir")); err != nil {
		panic(err)
	}
}
