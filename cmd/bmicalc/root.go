package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "bmicalc",
		Short:        "Body mass index calculator",
		Long:         "Computes BMI, category, ideal weight and BMR from body measurements, and reads or writes the BMI exchange format.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(newCalcCmd(v), newImportCmd(v), newDecodeCmd(v))
	return root
}

// initConfig wires the optional config file and BMICALC_* environment
// variables into v. Flags set on the command line still take precedence.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("bmicalc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	return v.ReadInConfig()
}
