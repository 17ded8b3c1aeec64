package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"projctl/internal/api"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:7391", "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("listening on http://%s\n", serveAddr)
		return api.New(serveAddr).Start(cmd.Context())
	},
}
