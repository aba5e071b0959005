package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pip-doctor/internal/app"
	"pip-doctor/internal/types"
)

type diagnoseOptions struct {
	Diagnoses   []string
	Store       string
	Environment string
	SkipInstall bool
	Profile     string
}

func newDiagnoseCommand() *cobra.Command {
	opts := diagnoseOptions{}
	cmd := &cobra.Command{
		Use:   "diagnose [package... | requirements-file]",
		Short: "Install packages into an environment, run diagnoses, and uninstall",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Diagnoses, "diagnoses", nil, "Diagnosis names to run (default: all registered)")
	cmd.Flags().StringVar(&opts.Store, "store", "dict", "Result store: dict or an existing folder path")
	cmd.Flags().StringVar(&opts.Environment, "env", "", "Virtual environment path (default: active environment)")
	cmd.Flags().BoolVar(&opts.SkipInstall, "skip-install", false, "Do not install or uninstall packages")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Diagnosis profile file")

	_ = viper.BindPFlag("diagnoses", cmd.Flags().Lookup("diagnoses"))
	_ = viper.BindPFlag("store", cmd.Flags().Lookup("store"))
	_ = viper.BindPFlag("environment", cmd.Flags().Lookup("env"))
	_ = viper.BindPFlag("skip_install", cmd.Flags().Lookup("skip-install"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))

	return cmd
}

func runDiagnose(ctx context.Context, cmd *cobra.Command, args []string, opts diagnoseOptions) error {
	service := app.NewService()
	environment := resolveString(cmd, opts.Environment, "environment", "env")
	if environment == "" {
		environment = service.Environment.CurrentPath()
	}
	result, err := service.DiagnosePackages(ctx, app.DiagnoseRequest{
		Packages:    args,
		Diagnoses:   resolveStrings(cmd, opts.Diagnoses, "diagnoses", "diagnoses"),
		Store:       resolveString(cmd, opts.Store, "store", "store"),
		Environment: environment,
		SkipInstall: resolveBool(cmd, opts.SkipInstall, "skip_install", "skip-install"),
		ProfilePath: resolveString(cmd, opts.Profile, "profile", "profile"),
	})
	if err != nil {
		return err
	}

	rendered, err := json.MarshalIndent(result.Results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println("------ RESULTS ------")
	fmt.Println(string(rendered))
	if result.StoreKind == types.StoreKindFolder {
		fmt.Printf("results written to %s\n", result.StoreDir)
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
