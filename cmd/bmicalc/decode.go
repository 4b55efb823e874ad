package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"Metrica/internal/calc/export"
)

func newDecodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Read a BMI exchange record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			name := v.GetString("decode.format")
			if name == "" && (strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml")) {
				name = "yaml"
			}
			f, err := export.ParseFormat(name)
			if err != nil {
				return err
			}
			rec, err := export.Decode(data, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI:           %g (%s)\n", rec.BMI, rec.Category)
			fmt.Fprintf(out, "Fat index:     %g\n", rec.AdditionalInfo.FatIndex)
			fmt.Fprintf(out, "Muscle index:  %g\n", rec.AdditionalInfo.MuscleIndex)
			fmt.Fprintf(out, "Generated:     %s\n", rec.Timestamp.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "", "Input format: json|yaml (default from file extension, else json)")
	v.BindPFlag("decode.format", cmd.Flags().Lookup("format"))
	return cmd
}
