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
	"fmt"

	"github.com/teamops-io/personnel-cli/internal/dashboard"
	"github.com/teamops-io/personnel-cli/internal/table"
	"github.com/teamops-io/personnel-cli/pkg/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "status"},
		Short:   "Show all pending requests in one table",
		Long: "Aggregate user creation requests, access requests and computer " +
			"assignments into a single action table",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			view := dashboard.Load(cmd.Context(), client)

			format := getEffectiveOutputFormat()
			if format == OutputFormatJSON || format == OutputFormatYAML {
				if msg := view.Err(); msg != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				return formatOutput(dashboardRowsForOutput(view.Rows()), format)
			}

			renderDashboard(view)
			return nil
		},
	}

	cmd.AddCommand(
		dashboardEditCmd(),
		dashboardDeleteCmd(),
	)

	return cmd
}

func renderDashboard(view *dashboard.View) {
	rows := view.Rows()

	if view.ShowErrorBanner() {
		printFailedMessage("%s", view.Err())
		return
	}
	if msg := view.Err(); msg != "" {
		// Partial data still renders; report the failed source alongside it.
		color.Yellow("Warning: %s", msg)
	}
	if dropped := view.Dropped(); dropped > 0 {
		color.Yellow("Warning: skipped %d record(s) without an id", dropped)
	}

	if len(rows) == 0 {
		fmt.Println("No pending requests")
		return
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			row.PersonLabel,
			row.RequestLabel,
			formatRowStatus(row.Status),
			string(row.Kind),
			row.ID.String(),
		})
	}

	table.RenderTable(table.TableOptions{
		Headers: []string{"Person", "Request", "Status", "Kind", "ID"},
		SortBy:  -1, // Keep collection order: people, access, assignments
		GroupBy: -1,
	}, tableRows)
}

// dashboardRowsForOutput flattens rows for structured output formats.
func dashboardRowsForOutput(rows []models.DashboardRow) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]string{
			"kind":    string(row.Kind),
			"id":      row.ID.String(),
			"person":  row.PersonLabel,
			"request": row.RequestLabel,
			"status":  row.Status,
		})
	}
	return out
}

func dashboardEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "edit [kind] [id]",
		Aliases: []string{"e"},
		Short:   "Show the edit command for a dashboard row",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseRowKind(args[0])
			if err != nil {
				return err
			}
			fmt.Println(dashboard.EditCommand(kind, models.ID(args[1])))
			return nil
		},
	}
}

func dashboardDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete [kind] [id]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a dashboard row",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseRowKind(args[0])
			if err != nil {
				return err
			}
			id := models.ID(args[1])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			view := dashboard.Load(cmd.Context(), client)

			row, ok := view.Find(kind, id)
			if !ok {
				return fmt.Errorf("no %s row with id %s", kind, id)
			}

			if !force {
				if err := confirmDeletion(row.PersonLabel, kind.KindLabel()); err != nil {
					return err
				}
			}

			message, err := view.Delete(cmd.Context(), client, kind, id)
			if err != nil {
				return err
			}

			if message == "" {
				message = fmt.Sprintf("Deleted %s for %q", kind.KindLabel(), row.PersonLabel)
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

// parseRowKind maps the user-facing kind spellings onto row kinds.
func parseRowKind(raw string) (models.RowKind, error) {
	switch raw {
	case "person", "people", "user", string(models.KindPersonCreation):
		return models.KindPersonCreation, nil
	case "access", string(models.KindAccessRequest):
		return models.KindAccessRequest, nil
	case "assign", "assignment", "computer", string(models.KindAssignment):
		return models.KindAssignment, nil
	default:
		return "", fmt.Errorf("unknown row kind %q (expected person, access or assignment)", raw)
	}
}
