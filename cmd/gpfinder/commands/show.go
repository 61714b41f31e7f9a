package commands

import (
	"os"
	"strings"

	"gpfinder-backend/services/surgeries"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <postcode>",
	Short: "Merges a postcode's raw datasets and prints the summary table.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		postcode := strings.ReplaceAll(args[0], " ", "")

		rows := mergeDatasets(readRawDatasets(config, postcode))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		header := table.Row{}
		for _, column := range surgeries.MergedColumns() {
			header = append(header, column)
		}
		t.AppendHeader(header)

		for _, row := range rows {
			record := table.Row{}
			for _, value := range row.Record() {
				record = append(record, value)
			}
			t.AppendRow(record)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
