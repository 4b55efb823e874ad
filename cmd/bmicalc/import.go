package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/calc/importer"
)

func newImportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Calculate BMI for every row of a spreadsheet",
		Long:  "Reads the first sheet of an xlsx workbook. Columns: weight, height, fatIndex, muscleIndex, gender, age. The first row is a header.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			res, err := importer.Import(file)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if v.GetString("import.format") == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			for i, item := range res.Results {
				if item.Error != "" {
					fmt.Fprintf(out, "row %d: error: %s\n", res.Rows[i], item.Error)
					continue
				}
				fmt.Fprintf(out, "row %d: %.1f %s\n", res.Rows[i], bmi.Round(item.Result.BMI, 1), item.Result.Category)
			}
			fmt.Fprintf(out, "%d ok, %d failed, %d skipped\n", res.Count, res.Failed, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text|json")
	v.BindPFlag("import.format", cmd.Flags().Lookup("format"))
	return cmd
}
