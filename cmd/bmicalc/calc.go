package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/calc/export"
)

func newCalcCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate BMI for one measurement",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bmi.Input{
				Weight:      bmi.Field(v.GetString("calc.weight")),
				Height:      bmi.Field(v.GetString("calc.height")),
				FatIndex:    bmi.Field(v.GetString("calc.fat-index")),
				MuscleIndex: bmi.Field(v.GetString("calc.muscle-index")),
				Gender:      bmi.Field(v.GetString("calc.gender")),
				Age:         bmi.Field(v.GetString("calc.age")),
			}
			res, err := bmi.Calculate(in)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, v.GetString("calc.format"))
		},
	}

	f := cmd.Flags()
	f.String("weight", "", "Weight in kilograms (required)")
	f.String("height", "", "Height in centimeters (required)")
	f.String("fat-index", "", "Body fat index, percent")
	f.String("muscle-index", "", "Muscle index, percent")
	f.String("gender", "", "male|female (default male)")
	f.String("age", "", "Age in years, enables BMR")
	f.StringP("format", "f", "text", "Output format: text|json|yaml")

	for _, name := range []string{"weight", "height", "fat-index", "muscle-index", "gender", "age", "format"} {
		v.BindPFlag("calc."+name, f.Lookup(name))
	}
	return cmd
}

func writeResult(w io.Writer, res bmi.Result, format string) error {
	if format == "" || format == "text" {
		printResult(w, res)
		return nil
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	out, err := export.Encode(export.FromResult(res, time.Now()), f)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	if err == nil && f == export.FormatJSON {
		fmt.Fprintln(w)
	}
	return err
}

func printResult(w io.Writer, res bmi.Result) {
	fmt.Fprintf(w, "BMI:           %.1f (%s)\n", bmi.Round(res.BMI, 1), res.Category)
	fmt.Fprintf(w, "Ideal weight:  %.1f kg\n", bmi.Round(res.IdealWeightKg, 1))
	if res.BMR != nil {
		fmt.Fprintf(w, "BMR:           %.0f kcal/day\n", *res.BMR)
	}
	if len(res.Advisories) > 0 {
		fmt.Fprintln(w, "Additional analysis:")
		for _, a := range res.Advisories {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
	fmt.Fprintln(w, "Recommendations:")
	for _, r := range res.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}
	fmt.Fprintf(w, "Risk:          %s\n", res.RiskNarrative)
}
