package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pip-doctor/internal/app"
)

type envOptions struct {
	BaseDir string
}

func newEnvCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage diagnosis virtual environments",
	}
	cmd.AddCommand(newEnvCreateCommand())
	cmd.AddCommand(newEnvInfoCommand())
	return cmd
}

func newEnvCreateCommand() *cobra.Command {
	opts := envOptions{}
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a virtual environment if it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewService()
			result, err := service.EnvCreate(cmd.Context(), app.EnvRequest{
				Name:    args[0],
				BaseDir: resolveString(cmd, opts.BaseDir, "envs_dir", "base-dir"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("environment ready: %s\n", result.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", "", "Directory holding virtual environments")
	_ = viper.BindPFlag("envs_dir", cmd.Flags().Lookup("base-dir"))
	return cmd
}

func newEnvInfoCommand() *cobra.Command {
	opts := envOptions{}
	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Resolve an environment path and report what is there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewService()
			result, err := service.EnvInfo(app.EnvRequest{
				Name:    args[0],
				BaseDir: resolveString(cmd, opts.BaseDir, "envs_dir", "base-dir"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("path: %s\n", result.Path)
			fmt.Printf("exists: %t\n", result.Exists)
			if result.Manager != "" {
				fmt.Printf("manager: %s\n", result.Manager)
			}
			if result.Current != "" {
				fmt.Printf("active environment: %s\n", result.Current)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", "", "Directory holding virtual environments")
	return cmd
}
