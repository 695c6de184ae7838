package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

// resolveBusinessID accepts a full UUID, a UUID prefix or an exact
// (case-insensitive) business name.
func resolveBusinessID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("business ID is required")
	}

	businesses, err := app.Businesses.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range businesses {
		if b.ID == input {
			return b.ID, nil
		}
	}
	for _, b := range businesses {
		if strings.EqualFold(b.Name, input) {
			return b.ID, nil
		}
	}

	var matches []string
	for _, b := range businesses {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("business not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("business ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newBusinessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Manage businesses",
	}

	cmd.AddCommand(
		newBusinessAddCmd(app),
		newBusinessListCmd(app),
		newBusinessInspectCmd(app),
		newBusinessUpdateCmd(app),
		newBusinessRemoveCmd(app),
	)

	return cmd
}

func newBusinessAddCmd(app *App) *cobra.Command {
	var name, category, mode string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new business",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Business{
				Name:          name,
				Category:      category,
				PreferredMode: domain.Mode(mode),
			}
			if err := app.Businesses.Create(context.Background(), b); err != nil {
				return err
			}
			fmt.Printf("Created business %s (%s)\n", b.Name, b.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Business name")
	cmd.Flags().StringVar(&category, "category", "gastro", "Business category (vertical)")
	cmd.Flags().StringVar(&mode, "mode", "quick", "Preferred onboarding mode (quick|full)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBusinessListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			businesses, err := app.Businesses.List(context.Background())
			if err != nil {
				return err
			}
			if len(businesses) == 0 {
				fmt.Println("No businesses yet. Add one with `intake business add`.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatBusinessList(businesses))
			return nil
		},
	}
}

func newBusinessInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a business and its stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Businesses.GetByID(ctx, id)
			if err != nil {
				return err
			}
			profile, err := app.Businesses.Profile(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBusinessInspect(b, profile))
			return nil
		},
	}
}

func newBusinessUpdateCmd(app *App) *cobra.Command {
	var name, category, mode string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a business",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Businesses.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				b.Name = name
			}
			if cmd.Flags().Changed("category") {
				b.Category = category
			}
			if cmd.Flags().Changed("mode") {
				b.PreferredMode = domain.Mode(mode)
			}

			if err := app.Businesses.Update(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Updated business %s\n", b.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Business name")
	cmd.Flags().StringVar(&category, "category", "", "Business category (vertical)")
	cmd.Flags().StringVar(&mode, "mode", "", "Preferred onboarding mode (quick|full)")

	return cmd
}

func newBusinessRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a business and its profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Businesses.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed business %s\n", id[:8])
			return nil
		},
	}
}
