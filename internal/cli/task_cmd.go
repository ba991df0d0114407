package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		title, typ, priority, assignee string
		initiative, due, estimate      string
		blockers                       []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No title and a terminal: collect fields with a form.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				if priority == "" {
					priority = string(domain.PriorityMedium)
				}
				if err := taskAddForm(&title, &priority, &due, &estimate).Run(); err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("--title is required in non-interactive mode")
			}

			task := &domain.Task{
				Title:           strings.TrimSpace(title),
				Type:            domain.NormalizeType(typ),
				Priority:        domain.NormalizePriority(priority),
				BlockingTaskIDs: blockers,
			}
			if assignee != "" {
				task.AssigneeID = &assignee
			}
			if initiative != "" {
				task.InitiativeID = &initiative
			}
			if due != "" {
				parsed, err := time.Parse("2006-01-02", strings.TrimSpace(due))
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				task.DueDate = &parsed
			}
			if estimate != "" {
				hours, err := strconv.ParseFloat(strings.TrimSpace(estimate), 64)
				if err != nil {
					return fmt.Errorf("parsing --estimate: %w", err)
				}
				task.EstimatedHours = hours
			}
			if len(blockers) > 0 {
				task.Status = domain.TaskBlocked
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&typ, "type", "task", "Task type (task, decision, review, research)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee user ID")
	cmd.Flags().StringVar(&initiative, "initiative", "", "Initiative ID")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&estimate, "estimate", "", "Estimated hours")
	cmd.Flags().StringSliceVar(&blockers, "blocked-by", nil, "IDs of tasks blocking this one")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var assignee string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var tasks []domain.Task
			var err error
			if assignee != "" {
				tasks, err = app.Tasks.ListByAssignee(ctx, assignee)
			} else {
				tasks, err = app.Tasks.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&assignee, "assignee", "", "Only tasks assigned to this user")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskDetail(task))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Task %s marked done\n", args[0])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Task %s deleted\n", args[0])
			return nil
		},
	}
}
