package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagCriteria string
	flagOutput   string
	flagInput    string
	flagFormat   string
	flagWorkers  int
)

var rootCmd = &cobra.Command{
	Use:   "bibscreen",
	Short: "Criteria-driven screening of bibliographic records",
	Long: "bibscreen screens bibliographic records (title + abstract) against a structured\n" +
		"criteria file and emits ordered Include/Exclude decisions with reasons, for\n" +
		"systematic-review style literature triage.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (or BIBSCREEN_CONFIG)")

	screenCmd.Flags().StringVar(&flagCriteria, "criteria", "", "criteria file (.txt, .html, .json, .yaml); built-in defaults when omitted")
	screenCmd.Flags().StringVarP(&flagOutput, "out", "o", "", "decision CSV destination (\"-\" for stdout)")
	screenCmd.Flags().StringVarP(&flagInput, "input", "i", "", "corpus file or feed URL, overriding configured corpora")
	screenCmd.Flags().StringVar(&flagFormat, "format", "", "corpus format for --input (bibtex, json, feed); inferred when omitted")
	screenCmd.Flags().IntVar(&flagWorkers, "workers", 0, "screening workers (0 = number of CPUs)")

	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(criteriaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
