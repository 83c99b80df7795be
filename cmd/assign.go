package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamops-io/personnel-cli/internal/api"
	"github.com/teamops-io/personnel-cli/internal/form"
	"github.com/teamops-io/personnel-cli/internal/table"
	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/teamops-io/personnel-cli/pkg/models"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func assignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assign",
		Aliases: []string{"as", "assignment", "assignments"},
		Short:   "Manage computer assignments",
		Long:    "Assign equipment to approved team members and manage existing assignments",
	}

	cmd.AddCommand(
		assignListCmd(),
		assignCreateCmd(),
		assignEditCmd(),
		assignDeleteCmd(),
	)

	return cmd
}

func assignListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List computer assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			assignments, err := client.ListAssignments(cmd.Context())
			if err != nil {
				return err
			}

			format := getEffectiveOutputFormat()
			if format == OutputFormatJSON || format == OutputFormatYAML {
				return formatOutput(assignments, format)
			}

			if len(assignments) == 0 {
				fmt.Println("No computer assignments found")
				return nil
			}

			rows := make([]table.Row, 0, len(assignments))
			for _, a := range assignments {
				status := a.Status
				if status == "" {
					status = models.WireStatusPending
				}
				rows = append(rows, table.Row{
					a.ID.String(),
					a.UserName,
					a.ComputerSerial,
					a.Model,
					a.AssignedAt,
					formatRowStatus(status),
				})
			}

			table.RenderTable(table.TableOptions{
				Headers: []string{"ID", "User", "Serial", "Model", "Assigned", "Status"},
				SortBy:  1, // Sort by User
				GroupBy: -1,
			}, rows)

			return nil
		},
	}
}

// assignmentFields is the computer-assignment form field set. The assignment
// date is optional on create and the server stamps a default.
func assignmentFields(dateRequired bool) []form.Field {
	return []form.Field{
		{Name: "user", Label: "User", Kind: form.Select, Required: true},
		{Name: "serial", Label: "Serial number", Kind: form.Text, Required: true},
		{Name: "date", Label: "Assignment date", Kind: form.Text, Required: dateRequired},
	}
}

func assignCreateCmd() *cobra.Command {
	var (
		userID      string
		serial      string
		date        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"c", "new"},
		Short:   "Assign a computer to a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := userID != "" || serial != ""
			useInteractive := isInteractiveMode(interactive, false, hasFlags)

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			f := form.NewCreate(assignmentFields(false)...)
			f.Set("user", userID)
			f.Set("serial", serial)
			f.Set("date", date)

			if useInteractive {
				person, err := selectApprovedPerson(cmd.Context(), client, models.ID(f.Value("user")))
				if err != nil {
					return err
				}
				f.Set("user", person.ID.String())

				chosenSerial, err := selectComputerSerial(cmd.Context(), client, f.Value("serial"))
				if err != nil {
					return err
				}
				f.Set("serial", chosenSerial)

				chosenDate, err := promptForDate(f.Value("date"))
				if err != nil {
					return err
				}
				f.Set("date", chosenDate)
			}

			message, err := f.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
				return client.CreateAssignment(ctx, models.CreateAssignmentInput{
					UserID:       models.ID(f.Value("user")),
					SerialNumber: f.Value("serial"),
					AssignedAt:   f.Value("date"),
				})
			})
			if err != nil {
				var verr *form.ValidationError
				if errors.As(err, &verr) {
					printFailedMessage("%s", verr.Message)
					return perrors.ErrValidation
				}
				return err
			}

			if message == "" {
				message = "Computer assigned successfully"
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "ID of the approved team member")
	cmd.Flags().StringVar(&serial, "serial", "", "Equipment serial number")
	cmd.Flags().StringVar(&date, "date", "", "Assignment date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode")

	return cmd
}

func assignEditCmd() *cobra.Command {
	var (
		userID string
		serial string
		date   string
	)

	cmd := &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"e", "update"},
		Short:   "Edit a computer assignment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.ID(args[0])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			f := form.NewEdit(assignmentFields(true)...)

			assignment, err := client.GetAssignment(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, perrors.ErrAssignmentNotFound) {
					f.FetchFailed(true, err.Error())
					return fmt.Errorf("no assignment with id %s", id)
				}
				f.FetchFailed(false, err.Error())
				return err
			}

			f.Seed(map[string]string{
				"user":   assignment.UserID.String(),
				"serial": assignment.ComputerSerial,
				"date":   dateOnly(assignment.AssignedAt),
			}, nil)

			hasFlags := userID != "" || serial != "" || date != ""
			if hasFlags {
				if userID != "" {
					f.Set("user", userID)
				}
				if serial != "" {
					f.Set("serial", serial)
				}
				if date != "" {
					f.Set("date", date)
				}
			} else if isInteractiveMode(false, false, false) {
				person, err := selectApprovedPerson(cmd.Context(), client, models.ID(f.Value("user")))
				if err != nil {
					return err
				}
				f.Set("user", person.ID.String())

				chosenSerial, err := promptForSerial(f.Value("serial"))
				if err != nil {
					return err
				}
				f.Set("serial", chosenSerial)

				chosenDate, err := promptForDate(f.Value("date"))
				if err != nil {
					return err
				}
				f.Set("date", chosenDate)
			}

			message, err := f.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
				return client.UpdateAssignment(ctx, id, models.UpdateAssignmentInput{
					UserID:         models.ID(f.Value("user")),
					ComputerSerial: f.Value("serial"),
					AssignedAt:     f.Value("date"),
				})
			})
			if err != nil {
				var verr *form.ValidationError
				if errors.As(err, &verr) {
					printFailedMessage("%s", verr.Message)
					return perrors.ErrValidation
				}
				return err
			}

			if message == "" {
				message = "Assignment updated successfully"
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "ID of the approved team member")
	cmd.Flags().StringVar(&serial, "serial", "", "Equipment serial number")
	cmd.Flags().StringVar(&date, "date", "", "Assignment date (YYYY-MM-DD)")

	return cmd
}

func assignDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a computer assignment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.ID(args[0])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			assignment, err := client.GetAssignment(cmd.Context(), id)
			if err != nil {
				return err
			}

			name := assignment.UserName
			if name == "" {
				name = models.UnknownPersonLabel
			}

			if !force {
				if err := confirmDeletion(name, models.KindAssignment.KindLabel()); err != nil {
					return err
				}
			}

			message, err := client.DeleteAssignment(cmd.Context(), id)
			if err != nil {
				return err
			}

			if message == "" {
				message = fmt.Sprintf("Deleted computer assignment for %q", name)
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func computersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "computers",
		Aliases: []string{"pc", "equipment"},
		Short:   "List available computers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			computers, err := client.ListComputers(cmd.Context())
			if err != nil {
				return err
			}

			format := getEffectiveOutputFormat()
			if format == OutputFormatJSON || format == OutputFormatYAML {
				return formatOutput(computers, format)
			}

			if len(computers) == 0 {
				fmt.Println("No computers available")
				return nil
			}

			rows := make([]table.Row, 0, len(computers))
			for _, c := range computers {
				rows = append(rows, table.Row{
					c.ID.String(),
					c.SerialNumber,
					c.Model,
					c.Status,
				})
			}

			table.RenderTable(table.TableOptions{
				Headers: []string{"ID", "Serial", "Model", "Status"},
				SortBy:  1, // Sort by Serial
				GroupBy: -1,
			}, rows)

			return nil
		},
	}
}

// selectComputerSerial offers the available-computers listing as a select
// control, falling back to manual entry when the listing is unavailable or
// the user wants a serial outside it.
func selectComputerSerial(ctx context.Context, client *api.Client, current string) (string, error) {
	computers, err := client.ListComputers(ctx)
	if err != nil || len(computers) == 0 {
		if err != nil {
			fmt.Printf("Warning: could not load available computers: %v\n", err)
		}
		return promptForSerial(current)
	}

	const manualEntry = "Enter a serial number manually"
	items := make([]string, 0, len(computers)+1)
	for _, c := range computers {
		if c.Model != "" {
			items = append(items, fmt.Sprintf("%s (%s)", c.SerialNumber, c.Model))
		} else {
			items = append(items, c.SerialNumber)
		}
	}
	items = append(items, manualEntry)

	prompt := promptui.Select{
		Label:             "Select a computer",
		Items:             items,
		Size:              10,
		StartInSearchMode: len(computers) > 10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
	}

	index, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("computer selection cancelled: %w", err)
	}
	if index == len(items)-1 {
		return promptForSerial(current)
	}

	return computers[index].SerialNumber, nil
}

func promptForSerial(current string) (string, error) {
	prompt := promptui.Prompt{
		Label:   "Serial number",
		Default: current,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("serial number cannot be empty")
			}
			return nil
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("serial input cancelled: %w", err)
	}
	return strings.TrimSpace(result), nil
}

func promptForDate(current string) (string, error) {
	if current == "" {
		current = time.Now().Format("2006-01-02")
	}

	prompt := promptui.Prompt{
		Label:   "Assignment date (YYYY-MM-DD)",
		Default: current,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return nil
			}
			if _, err := time.Parse("2006-01-02", strings.TrimSpace(input)); err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD")
			}
			return nil
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("date input cancelled: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// dateOnly trims a timestamp down to its date part for the date field.
func dateOnly(timestamp string) string {
	if idx := strings.IndexByte(timestamp, 'T'); idx > 0 {
		return timestamp[:idx]
	}
	return timestamp
}
