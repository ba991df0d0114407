package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
		newUserRemoveCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var (
		name, team string
		capacity   float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := &domain.User{
				Name:               name,
				TeamID:             team,
				DailyCapacityHours: capacity,
			}
			if err := app.Users.Create(context.Background(), user); err != nil {
				return err
			}
			fmt.Printf("Created user %s (%s)\n", user.Name, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "User name")
	cmd.Flags().StringVar(&team, "team", "", "Team ID")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Daily capacity in hours (default 8)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var users []domain.User
			var err error
			if team != "" {
				users, err = app.Users.ListByTeam(ctx, team)
			} else {
				users, err = app.Users.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatUserList(users))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Only users in this team")

	return cmd
}

func newUserRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("User %s deleted\n", args[0])
			return nil
		},
	}
}
