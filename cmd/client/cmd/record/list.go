// cmd/client/cmd/record/list.go
package record

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"datakeeper/internal/domain/record"

	"github.com/spf13/cobra"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Просмотр списка всех записей в порядке возрастания ID.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		records, err := app.ListRecords(cmd.Context())
		if err != nil {
			return err
		}

		return printRecords(cmd.OutOrStdout(), listFormat, records)
	},
}

func printRecords(w io.Writer, format string, records []record.Record) error {
	switch format {
	case "json":
		return printRecordsJSON(w, records)
	case "table":
		return printRecordsTable(w, records)
	case "simple", "":
		return printRecordsSimple(w, records)
	default:
		return fmt.Errorf("неизвестный формат вывода %q", format)
	}
}

func printRecordsSimple(w io.Writer, records []record.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	fmt.Fprintf(w, "Найдено записей: %d\n\n", len(records))

	for i, rec := range records {
		fmt.Fprintf(w, "%d. %s (ID: %d)\n", i+1, rec.Name, rec.IDValue())
	}

	return nil
}

func printRecordsTable(w io.Writer, records []record.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tИмя\t\n")
	fmt.Fprintf(tw, "---\t---\t\n")

	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t\n", rec.IDValue(), truncate(rec.Name, 40))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего записей: %d\n", len(records))
	return nil
}

func printRecordsJSON(w io.Writer, records []record.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json)")
}
