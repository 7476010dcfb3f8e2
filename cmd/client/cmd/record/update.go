// cmd/client/cmd/record/update.go
package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Обновить запись",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		rec, err := app.UpdateRecord(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Запись %d обновлена: %s\n", color.GreenString("✓"), rec.IDValue(), rec.Name)
		return nil
	},
}
