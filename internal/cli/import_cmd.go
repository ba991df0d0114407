package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a JSON work snapshot",
		Long:  "Import users and tasks from a JSON snapshot file. Existing rows with the same IDs are not touched; the import fails before writing anything if the snapshot is invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d users, %d tasks, %d blocker edges\n",
				result.UserCount, result.TaskCount, result.EdgeCount)
			return nil
		},
	}
}
