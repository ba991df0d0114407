package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	var userID string
	var days int

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show your execution score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewScoreRequest(userID)
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}

			score, err := app.Analytics.ExecutionScore(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatScore(score))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to score")
	cmd.Flags().IntVar(&days, "days", 14, "Velocity window in days")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newVelocityCmd(app *App) *cobra.Command {
	var userID string
	var days int

	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Show daily task throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewVelocityRequest(userID)
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}

			metrics, err := app.Analytics.Velocity(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatVelocity(metrics))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().IntVar(&days, "days", 14, "Window in days")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newBottlenecksCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "bottlenecks",
		Short: "Detect what is blocking your work",
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := app.Analytics.Bottlenecks(context.Background(), contract.NewBottleneckRequest(userID))
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatBottlenecks(found))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newWorkloadCmd(app *App) *cobra.Command {
	var teamID string
	var days int

	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Show team capacity over the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewWorkloadRequest(teamID)
			if cmd.Flags().Changed("days") {
				req.PeriodDays = days
			}

			workload, err := app.Analytics.Workload(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatWorkload(workload))
			return nil
		},
	}

	cmd.Flags().StringVar(&teamID, "team", "", "Team ID")
	cmd.Flags().IntVar(&days, "days", 7, "Period in days")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}
