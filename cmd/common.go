package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/teamops-io/personnel-cli/internal/api"
	"github.com/teamops-io/personnel-cli/internal/catalog"
	"github.com/teamops-io/personnel-cli/internal/config"
	"github.com/teamops-io/personnel-cli/pkg/models"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// getEffectiveOutputFormat returns the output format to use, checking flag -> config -> default
func getEffectiveOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	cfg := config.GetConfig()
	if cfg.Defaults.OutputFormat != "" {
		return cfg.Defaults.OutputFormat
	}
	return OutputFormatTable
}

// createAPIClient creates a personnel API client using the global configuration.
// Command-line flags override config and env vars.
func createAPIClient() (*api.Client, error) {
	cfg := config.GetConfig()

	clientConfig := &api.Config{
		Address: cfg.API.Address,
		Token:   cfg.API.Token,
		Debug:   debugHTTP,
	}
	if apiAddr != "" {
		clientConfig.Address = apiAddr
	}
	if apiToken != "" {
		clientConfig.Token = apiToken
	}

	return api.NewClient(clientConfig)
}

// loadCatalog loads the option catalogs, honoring the override file when present
func loadCatalog() *catalog.Catalog {
	cat, err := catalog.Load(config.CatalogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using built-in catalogs)\n", err)
		return catalog.Default()
	}
	return cat
}

// formatOutput handles the common output formatting logic used across commands
func formatOutput(data interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		jsonData, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		fmt.Println(string(jsonData))

	case OutputFormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		fmt.Print(string(yamlData))

	default:
		return fmt.Errorf("unsupported output format for generic data: %s", format)
	}
	return nil
}

// isInteractiveMode determines if we should use interactive mode based on flags and TTY
func isInteractiveMode(interactive bool, hasArgs bool, hasRequiredFlags bool) bool {
	// Use interactive mode if:
	// 1. Explicitly requested with -i flag
	// 2. No arguments/required flags provided AND we have a TTY
	return interactive || (!hasArgs && !hasRequiredFlags && term.IsTerminal(int(os.Stdin.Fd())))
}

// printSuccessMessage prints a success message with green checkmark
func printSuccessMessage(message string, args ...interface{}) {
	color.Green("✓ "+message, args...)
}

// printFailedMessage prints a failure message with red cross
func printFailedMessage(message string, args ...interface{}) {
	color.Red("× "+message, args...)
}

// formatRowStatus returns a colored string representation of a request status,
// bucketed by its presentation class
func formatRowStatus(status string) string {
	switch models.ClassifyStatus(status) {
	case models.StatusPending:
		return color.YellowString(status)
	case models.StatusApproved:
		return color.GreenString(status)
	case models.StatusRejected:
		return color.RedString(status)
	default:
		return color.WhiteString(status)
	}
}

// wrapError wraps an error with context information
func wrapError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
