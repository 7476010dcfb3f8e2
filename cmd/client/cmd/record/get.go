// cmd/client/cmd/record/get.go
package record

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getJSON bool

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		rec, err := app.GetRecord(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if getJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rec)
		}

		fmt.Fprintf(out, "ID:   %d\n", rec.IDValue())
		fmt.Fprintf(out, "Имя:  %s\n", rec.Name)
		return nil
	},
}

func init() {
	GetCmd.Flags().BoolVar(&getJSON, "json", false, "вывод в формате JSON")
}
