package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/dagrooster-go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the roster form web interface",
	Long:  `Start a web server with one input per template field, grouped by location.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := extractOptions()
		if err != nil {
			return err
		}

		values, closeValues, err := openValues()
		if err != nil {
			return err
		}
		defer closeValues()

		srv := server.New(newLoader(), values, opts, viper.GetString("username"), viper.GetString("password"))
		return srv.Start(viper.GetString("bind"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("bind", "b", ":8080", "Address to bind the server to")
	serveCmd.Flags().StringP("username", "u", "", "Username for basic auth (optional)")
	serveCmd.Flags().StringP("password", "p", "", "Password for basic auth (optional)")

	for _, name := range []string{"bind", "username", "password"} {
		viper.BindPFlag(name, serveCmd.Flags().Lookup(name))
	}
}
