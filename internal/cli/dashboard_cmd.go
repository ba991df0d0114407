package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive analytics dashboard",
		Long:  "Open a terminal dashboard with tabs for execution score, velocity, bottlenecks, and team workload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}

			// The workload tab is scoped to the user's team.
			u, err := app.Users.GetByID(context.Background(), user)
			if err != nil {
				return fmt.Errorf("loading user %q: %w", user, err)
			}

			model := newDashboardModel(app.Analytics, u.ID, u.TeamID)
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID to show analytics for")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
