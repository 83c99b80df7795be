package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/teamops-io/personnel-cli/internal/catalog"
	"github.com/teamops-io/personnel-cli/internal/form"
	"github.com/teamops-io/personnel-cli/internal/table"
	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/teamops-io/personnel-cli/pkg/models"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func accessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "access",
		Aliases: []string{"ac", "accesses"},
		Short:   "Manage access requests",
		Long:    "Request, list, edit and remove application access for approved team members",
	}

	cmd.AddCommand(
		accessListCmd(),
		accessCreateCmd(),
		accessEditCmd(),
		accessDeleteCmd(),
	)

	return cmd
}

func accessListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List access requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			requests, err := client.ListAccessRequests(cmd.Context())
			if err != nil {
				return err
			}

			format := getEffectiveOutputFormat()
			if format == OutputFormatJSON || format == OutputFormatYAML {
				return formatOutput(requests, format)
			}

			if len(requests) == 0 {
				fmt.Println("No access requests found")
				return nil
			}

			rows := make([]table.Row, 0, len(requests))
			for _, r := range requests {
				rows = append(rows, table.Row{
					r.ID.String(),
					r.UserName,
					r.AccessType,
					r.UserType,
					formatRowStatus(r.Status),
					r.CreatedAt,
				})
			}

			table.RenderTable(table.TableOptions{
				Headers: []string{"ID", "User", "Access", "User Type", "Status", "Created"},
				SortBy:  1, // Sort by User
				GroupBy: 1, // Group by User
			}, rows)

			return nil
		},
	}
}

// accessFields is the access-request form field set. Create omits the
// user-type selector; the create endpoint does not take one.
func accessFields(withUserType bool) []form.Field {
	fields := []form.Field{
		{Name: "user", Label: "User", Kind: form.Select, Required: true},
	}
	if withUserType {
		fields = append(fields, form.Field{Name: "usertype", Label: "User type", Kind: form.Select, Required: true})
	}
	fields = append(fields, form.Field{Name: "access", Label: "Access type", Kind: form.MultiSelect, Required: true})
	return fields
}

func accessCreateCmd() *cobra.Command {
	var (
		userID      string
		accessTypes []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"c", "new", "request"},
		Short:   "Create a new access request",
		Long:    "Request application access for an approved team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := userID != "" || len(accessTypes) > 0
			useInteractive := isInteractiveMode(interactive, false, hasFlags)

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}
			cat := loadCatalog()

			f := form.NewCreate(accessFields(false)...)
			f.Set("user", userID)
			f.SetMulti("access", accessTypes)

			if useInteractive {
				person, err := selectApprovedPerson(cmd.Context(), client, models.ID(f.Value("user")))
				if err != nil {
					return err
				}
				f.Set("user", person.ID.String())

				selection, err := selectAccessTypes(cat, f.Multi("access"))
				if err != nil {
					return err
				}
				f.SetMulti("access", selection)
			}

			if err := validateAccessSelection(cat, f.Multi("access")); err != nil {
				return err
			}

			message, err := f.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
				return client.CreateAccessRequest(ctx, models.CreateAccessRequestInput{
					UserID:     models.ID(f.Value("user")),
					AccessType: models.JoinAccessTypes(f.Multi("access")),
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
				message = "Access request created successfully"
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "ID of the approved team member")
	cmd.Flags().StringSliceVar(&accessTypes, "access", nil, "Access types to request (repeatable or comma-separated)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode")

	return cmd
}

func accessEditCmd() *cobra.Command {
	var (
		userID      string
		userType    string
		accessTypes []string
	)

	cmd := &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"e", "update"},
		Short:   "Edit an access request",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.ID(args[0])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}
			cat := loadCatalog()

			f := form.NewEdit(accessFields(true)...)

			request, err := client.GetAccessRequest(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, perrors.ErrRequestNotFound) {
					f.FetchFailed(true, err.Error())
					return fmt.Errorf("no access request with id %s", id)
				}
				f.FetchFailed(false, err.Error())
				return err
			}

			f.Seed(map[string]string{
				"user":     request.UserID.String(),
				"usertype": request.UserType,
			}, map[string][]string{
				"access": request.AccessTypes(),
			})

			fmt.Printf("Current status: %s\n", formatRowStatus(request.Status))
			if request.CreatedAt != "" {
				fmt.Printf("Requested: %s\n", request.CreatedAt)
			}

			hasFlags := userID != "" || userType != "" || len(accessTypes) > 0
			if hasFlags {
				if userID != "" {
					f.Set("user", userID)
				}
				if userType != "" {
					f.Set("usertype", userType)
				}
				if len(accessTypes) > 0 {
					f.SetMulti("access", accessTypes)
				}
			} else if isInteractiveMode(false, false, false) {
				person, err := selectApprovedPerson(cmd.Context(), client, models.ID(f.Value("user")))
				if err != nil {
					return err
				}
				f.Set("user", person.ID.String())

				chosenType, err := selectUserType(cat, f.Value("usertype"))
				if err != nil {
					return err
				}
				f.Set("usertype", chosenType)

				selection, err := selectAccessTypes(cat, f.Multi("access"))
				if err != nil {
					return err
				}
				f.SetMulti("access", selection)
			}

			if err := validateAccessSelection(cat, f.Multi("access")); err != nil {
				return err
			}
			if ut := f.Value("usertype"); ut != "" && !cat.HasUserType(ut) {
				return fmt.Errorf("unknown user type %q (catalog: %s)", ut, strings.Join(cat.UserTypes, ", "))
			}

			message, err := f.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
				return client.UpdateAccessRequest(ctx, id, models.UpdateAccessRequestInput{
					UserID:     models.ID(f.Value("user")),
					UserType:   f.Value("usertype"),
					AccessType: models.JoinAccessTypes(f.Multi("access")),
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
				message = "Access request updated successfully"
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "ID of the approved team member")
	cmd.Flags().StringVar(&userType, "user-type", "", "User type classification")
	cmd.Flags().StringSliceVar(&accessTypes, "access", nil, "Access types to request (repeatable or comma-separated)")

	return cmd
}

func accessDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete an access request",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.ID(args[0])

			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			request, err := client.GetAccessRequest(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !force {
				if err := confirmDeletion(request.UserName, models.KindAccessRequest.KindLabel()); err != nil {
					return err
				}
			}

			message, err := client.DeleteAccessRequest(cmd.Context(), id)
			if err != nil {
				return err
			}

			if message == "" {
				message = fmt.Sprintf("Deleted access request for %q", request.UserName)
			}
			printSuccessMessage("%s", message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

// selectAccessTypes runs the checkbox-style multi-select: repeatedly toggle
// catalog entries until Done is chosen.
func selectAccessTypes(cat *catalog.Catalog, current []string) ([]string, error) {
	selected := make(map[string]bool, len(current))
	for _, v := range current {
		selected[v] = true
	}

	const done = "Done"
	for {
		items := make([]string, 0, len(cat.AccessTypes)+1)
		for _, opt := range cat.AccessTypes {
			mark := "[ ]"
			if selected[opt] {
				mark = "[x]"
			}
			items = append(items, fmt.Sprintf("%s %s", mark, opt))
		}
		items = append(items, done)

		prompt := promptui.Select{
			Label: "Toggle requested accesses",
			Items: items,
			Size:  len(items),
		}

		index, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("access selection cancelled: %w", err)
		}
		if index == len(items)-1 {
			break
		}

		opt := cat.AccessTypes[index]
		selected[opt] = !selected[opt]
	}

	// Preserve catalog order regardless of toggle order.
	out := make([]string, 0, len(selected))
	for _, opt := range cat.AccessTypes {
		if selected[opt] {
			out = append(out, opt)
		}
	}
	return out, nil
}

// selectUserType offers the user-type catalog in a select control.
func selectUserType(cat *catalog.Catalog, current string) (string, error) {
	defaultIndex := 0
	for i, t := range cat.UserTypes {
		if t == current {
			defaultIndex = i
		}
	}

	prompt := promptui.Select{
		Label:     "Select a user type",
		Items:     cat.UserTypes,
		CursorPos: defaultIndex,
		Size:      len(cat.UserTypes),
	}

	_, value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("user type selection cancelled: %w", err)
	}
	return value, nil
}

// validateAccessSelection rejects labels outside the catalog before any
// payload is built.
func validateAccessSelection(cat *catalog.Catalog, selection []string) error {
	for _, label := range selection {
		if !cat.HasAccessType(label) {
			return fmt.Errorf("unknown access type %q (catalog: %s)", label, strings.Join(cat.AccessTypes, ", "))
		}
	}
	return nil
}
