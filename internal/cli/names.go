package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pip-doctor/internal/app"
)

func newNamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Manage the cached package name listing",
	}
	cmd.AddCommand(newNamesRefreshCommand())
	cmd.AddCommand(newNamesContainsCommand())
	return cmd
}

func newNamesRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the full package listing and rewrite the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := app.NewService()
			result, err := service.NamesRefresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("cached %d package names in %s\n", result.Count, result.CachePath)
			return nil
		},
	}
}

func newNamesContainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <name>",
		Short: "Check whether a name is taken on the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewService()
			result, err := service.NamesContains(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if result.Contains {
				fmt.Printf("%s is taken\n", result.Name)
			} else {
				fmt.Printf("%s is free\n", result.Name)
			}
			return nil
		},
	}
}
