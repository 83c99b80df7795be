package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/teamops-io/personnel-cli/internal/api"
	"github.com/teamops-io/personnel-cli/internal/config"
	"github.com/teamops-io/personnel-cli/internal/form"
	"github.com/teamops-io/personnel-cli/internal/table"
	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/teamops-io/personnel-cli/pkg/models"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func peopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"p", "person", "users"},
		Short:   "Manage team members",
		Long:    "Register, list, edit and remove team member records",
	}

	cmd.AddCommand(
		peopleListCmd(),
		peopleCreateCmd(),
		peopleEditCmd(),
		peopleDeleteCmd(),
	)

	return cmd
}

// personFields is the shared field set of the create and edit person forms.
func personFields() []form.Field {
	return []form.Field{
		{Name: "name", Label: "Full name", Kind: form.Text, Required: true},
		{Name: "email", Label: "Email", Kind: form.Text, Required: true},
		{Name: "area", Label: "Area / Department", Kind: form.Text, Required: true},
		{Name: "role", Label: "Role", Kind: form.Text, Required: true},
	}
}

func peopleListCmd() *cobra.Command {
	var approvedOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			people, err := client.ListPeople(cmd.Context())
			if err != nil {
				return err
			}
			if approvedOnly {
				people = models.ApprovedOnly(people)
			}

			format := getEffectiveOutputFormat()
			if format == OutputFormatJSON || format == OutputFormatYAML {
				return formatOutput(people, format)
			}

			if len(people) == 0 {
				fmt.Println("No team members found")
				return nil
			}

			rows := make([]table.Row, 0, len(people))
			for _, p := range people {
				rows = append(rows, table.Row{
					p.ID.String(),
					p.Name,
					p.Email,
					p.Area,
					p.Role,
					formatRowStatus(p.Status),
				})
			}

			table.RenderTable(table.TableOptions{
				Headers: []string{"ID", "Name", "Email", "Area", "Role", "Status"},
				SortBy:  1, // Sort by Name
				GroupBy: -1,
			}, rows)

			return nil
		},
	}

	cmd.Flags().BoolVar(&approvedOnly, "approved", false, "Show only approved members")

	return cmd
}

func peopleCreateCmd() *cobra.Command {
	var (
		name        string
		email       string
		area        string
		role        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"c", "new", "add", "register"},
		Short:   "Register a new team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := name != "" || email != "" || area != "" || role != ""
			useInteractive := isInteractiveMode(interactive, false, hasFlags)

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			f := form.NewCreate(personFields()...)
			f.Set("name", name)
			f.Set("email", email)
			f.Set("area", area)
			f.Set("role", role)
			if f.Value("area") == "" {
				f.Set("area", config.GetConfig().Defaults.Area)
			}

			if useInteractive {
				if err := promptPersonFields(f); err != nil {
					return err
				}
			}

			message, err := f.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
				return client.CreatePerson(ctx, models.CreatePersonInput{
					Name:  f.Value("name"),
					Email: f.Value("email"),
					Area:  f.Value("area"),
					Role:  f.Value("role"),
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
				message = "Team member registered successfully"
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&area, "area", "", "Area / department")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode")

	return cmd
}

func peopleEditCmd() *cobra.Command {
	var (
		name  string
		email string
		area  string
		role  string
	)

	cmd := &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"e", "update"},
		Short:   "Edit a team member record",
		Long:    "Edit a team member. The record is fetched first and its current values become the defaults.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.ID(args[0])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			f := form.NewEdit(personFields()...)

			person, err := client.GetPersonByID(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, perrors.ErrPersonNotFound) {
					f.FetchFailed(true, err.Error())
					return fmt.Errorf("no team member with id %s", id)
				}
				f.FetchFailed(false, err.Error())
				return err
			}

			f.Seed(map[string]string{
				"name":  person.Name,
				"email": person.Email,
				"area":  person.Area,
				"role":  person.Role,
			}, nil)

			// Flags override fetched values; otherwise prompt with the
			// fetched values as defaults when on a TTY.
			hasFlags := name != "" || email != "" || area != "" || role != ""
			if hasFlags {
				overridePersonFields(f, name, email, area, role)
			} else if isInteractiveMode(false, false, false) {
				if err := promptPersonFields(f); err != nil {
					return err
				}
			}

			message, err := f.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
				return client.UpdatePerson(ctx, id, models.UpdatePersonInput{
					Name:  f.Value("name"),
					Email: f.Value("email"),
					// The update endpoint takes both; the product always
					// sent the area value for both fields.
					Department: f.Value("area"),
					Area:       f.Value("area"),
					Role:       f.Value("role"),
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
				message = "Team member updated successfully"
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&area, "area", "", "Area / department")
	cmd.Flags().StringVar(&role, "role", "", "Role")

	return cmd
}

func peopleDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a team member record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.ID(args[0])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			person, err := client.GetPersonByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !force {
				if err := confirmDeletion(person.Name, models.KindPersonCreation.KindLabel()); err != nil {
					return err
				}
			}

			message, err := client.DeletePerson(cmd.Context(), id)
			if err != nil {
				return err
			}

			if message == "" {
				message = fmt.Sprintf("Deleted team member %q", person.Name)
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

// promptPersonFields walks the person form fields interactively, offering
// current values as defaults.
func promptPersonFields(f *form.Form) error {
	for _, field := range personFields() {
		prompt := promptui.Prompt{
			Label:   field.Label,
			Default: f.Value(field.Name),
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return fmt.Errorf("%s cannot be empty", strings.ToLower(field.Label))
				}
				return nil
			},
		}
		value, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("input cancelled: %w", err)
		}
		f.Set(field.Name, strings.TrimSpace(value))
	}
	return nil
}

func overridePersonFields(f *form.Form, name, email, area, role string) {
	if name != "" {
		f.Set("name", name)
	}
	if email != "" {
		f.Set("email", email)
	}
	if area != "" {
		f.Set("area", area)
	}
	if role != "" {
		f.Set("role", role)
	}
}

// confirmDeletion prompts for confirmation naming the person and the
// human-readable request-type label.
func confirmDeletion(personName, kindLabel string) error {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Delete %q (%s)", personName, kindLabel),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return fmt.Errorf("deletion cancelled")
	}
	return nil
}

// selectApprovedPerson offers the approved-only person list in a select
// control and returns the chosen person.
func selectApprovedPerson(ctx context.Context, client *api.Client, current models.ID) (models.Person, error) {
	people, err := client.ListApprovedPeople(ctx)
	if err != nil {
		return models.Person{}, err
	}
	if len(people) == 0 {
		return models.Person{}, perrors.ErrNoApprovedPeople
	}

	items := make([]string, len(people))
	defaultIndex := 0
	for i, p := range people {
		items[i] = fmt.Sprintf("%s (%s)", p.Name, p.Email)
		if !current.IsZero() && p.ID == current {
			defaultIndex = i
		}
	}

	prompt := promptui.Select{
		Label:             "Select a user",
		Items:             items,
		CursorPos:         defaultIndex,
		Size:              10,
		StartInSearchMode: len(people) > 10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
	}

	selectedIndex, _, err := prompt.Run()
	if err != nil {
		return models.Person{}, fmt.Errorf("user selection cancelled: %w", err)
	}

	return people[selectedIndex], nil
}
