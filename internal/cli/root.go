package cli

import (
	"strings"

	"github.com/alexanderramin/pulse/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Users     service.UserService
	Analytics service.AnalyticsService
	Import    service.ImportService

	// ListenAddr is the default bind address for the serve command.
	ListenAddr string

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flags when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulse",
		Short: "Personal execution analytics for your task list",
	}

	// Accept underscore spellings like --blocked_by for multi-word flags.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newScoreCmd(app),
		newVelocityCmd(app),
		newBottlenecksCmd(app),
		newWorkloadCmd(app),
		newTaskCmd(app),
		newUserCmd(app),
		newImportCmd(app),
		newServeCmd(app),
		newDashboardCmd(app),
	)

	return root
}
