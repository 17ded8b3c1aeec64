package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"projctl/internal/update"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer projctl release",
	RunE: func(cmd *cobra.Command, args []string) error {
		var chk update.Checker
		res, err := chk.Check(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("current: v%s (%s/%s)\n", res.Current, runtime.GOOS, runtime.GOARCH)
		fmt.Printf("latest:  v%s\n", res.Latest)
		if res.UpToDate {
			fmt.Println("already up to date")
			return nil
		}
		fmt.Printf("new release available: %s\n", res.ReleaseURL)
		return nil
	},
}
