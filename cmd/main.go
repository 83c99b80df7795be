// Copyright (C) 2026 Ioannis Torakis <john.torakis@gmail.com>
// SPDX-License-Identifier: Elastic-2.0
//
// Licensed under the Elastic License 2.0.
// You may obtain a copy of the license at:
// https://www.elastic.co/licensing/elastic-license
//
// Use, modification, and redistribution permitted under the terms of the license,
// except for providing this software as a commercial service or product.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/teamops-io/personnel-cli/internal/config"
	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Version information set by ldflags during build
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"

	apiAddr      string
	apiToken     string
	outputFormat string
	debugHTTP    bool

	rootCmd = &cobra.Command{
		Use:   "teamops",
		Short: "CLI for TeamOps - Personnel Operations Management",
		Long: `TeamOps CLI provides command-line access to the personnel-management API for
registering team members, requesting application access, assigning computers,
and reviewing pending requests.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := config.Init(); err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiAddr, "api-addr", "a", "", "Personnel API address")
	rootCmd.PersistentFlags().StringVarP(&apiToken, "token", "t", "", "Bearer token for authentication")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugHTTP, "debug", false, "Log HTTP requests and responses")

	rootCmd.AddCommand(
		loginCmd(),
		logoutCmd(),
		authCmd(),
		peopleCmd(),
		accessCmd(),
		assignCmd(),
		computersCmd(),
		dashboardCmd(),
		configCmd(),
		versionCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Session expiry is handled in one place: drop the stale credential
		// and point the user back at login.
		if errors.Is(err, perrors.ErrSessionExpired) {
			if clearErr := config.ClearToken(); clearErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to clear saved token: %v\n", clearErr)
			}
			fmt.Fprintln(os.Stderr, "Session expired. Run 'teamops login' to authenticate again.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("TeamOps CLI %s\n", Version)
			fmt.Printf("Commit: %s\n", CommitHash)
			fmt.Printf("Built: %s\n", BuildDate)
		},
	}
}
