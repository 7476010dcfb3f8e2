// cmd/client/cmd/record/create.go
package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var CreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Создать запись",
	Long:  `Создает новую запись с указанным именем. Имя не может быть пустым.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		rec, err := app.CreateRecord(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Запись создана, ID: %d\n", color.GreenString("✓"), rec.IDValue())
		return nil
	},
}
