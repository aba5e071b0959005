package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pip-doctor/internal/app"
)

type infoOptions struct {
	Raw bool
}

func newInfoCommand() *cobra.Command {
	opts := infoOptions{}
	cmd := &cobra.Command{
		Use:   "info <package>",
		Short: "Show a package's index metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the raw index JSON document")
	return cmd
}

func runInfo(cmd *cobra.Command, pkg string, opts infoOptions) error {
	service := app.NewService()
	result, err := service.Info(cmd.Context(), app.InfoRequest{Package: pkg, Raw: opts.Raw})
	if err != nil {
		return err
	}

	if opts.Raw {
		rendered, err := json.MarshalIndent(result.Document, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(rendered))
		return nil
	}

	if result.Metadata.Empty() {
		fmt.Printf("no metadata for %s\n", pkg)
		return nil
	}
	info := result.Metadata.Info
	fmt.Printf("name: %s\n", info.Name)
	fmt.Printf("version: %s\n", info.Version)
	if result.LatestVersion != "" {
		fmt.Printf("latest release: %s\n", result.LatestVersion)
	}
	fmt.Printf("summary: %s\n", info.Summary)
	fmt.Printf("author: %s\n", info.Author)
	fmt.Printf("home page: %s\n", info.HomePage)
	fmt.Printf("releases: %d\n", len(result.Metadata.Releases))
	if result.HasRelease {
		fmt.Printf("last release size: %d bytes\n", result.LastRelease.Size)
		fmt.Printf("last release uploaded: %s\n", result.LastRelease.UploadTimeISO8601)
	}
	return nil
}
