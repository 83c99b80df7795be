package main

import (
	"fmt"

	"github.com/teamops-io/personnel-cli/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage configuration",
		Long:    "Manage TeamOps CLI configuration",
	}

	cmd.AddCommand(
		configShowCmd(),
		configSetCmd(),
	)

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"get", "view"},
		Short:   "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()

			// Mask token for security
			displayCfg := *cfg
			if displayCfg.API.Token != "" {
				displayCfg.API.Token = "***MASKED***"
			}

			yamlData, err := yaml.Marshal(displayCfg)
			if err != nil {
				return wrapError("marshal config", err)
			}

			fmt.Print(string(yamlData))
			fmt.Printf("catalog: %s\n", config.CatalogPath())
			return nil
		},
	}
}

func configSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set configuration values",
		Long:  "Set configuration values",
	}

	cmd.AddCommand(
		configSetAPIAddressCmd(),
		configSetOutputFormatCmd(),
		configSetDefaultAreaCmd(),
	)

	return cmd
}

func configSetAPIAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "api-address [address]",
		Aliases: []string{"address"},
		Short:   "Set the personnel API address",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetAPIAddress(args[0]); err != nil {
				return wrapError("set API address", err)
			}
			fmt.Printf("API address set to: %s\n", args[0])
			return nil
		},
	}
}

func configSetOutputFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "output-format [format]",
		Short: "Set default output format (table, json, yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			if format != OutputFormatTable && format != OutputFormatJSON && format != OutputFormatYAML {
				return fmt.Errorf("invalid output format: %s. Must be one of: table, json, yaml", format)
			}

			if err := config.SetOutputFormat(format); err != nil {
				return wrapError("set output format", err)
			}
			fmt.Printf("Default output format set to: %s\n", format)
			return nil
		},
	}
}

func configSetDefaultAreaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "default-area [area]",
		Aliases: []string{"area"},
		Short:   "Set the default area pre-filled when creating team members",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetDefaultArea(args[0]); err != nil {
				return wrapError("set default area", err)
			}
			fmt.Printf("Default area set to: %s\n", args[0])
			return nil
		},
	}
}
