package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"BibScreen/internal/criteria"
	"BibScreen/internal/infrastructure/criteriafile"
)

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Inspect and validate criteria files",
}

var criteriaShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Parse a criteria file and print the validated model",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCriteriaShow,
}

var criteriaValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a criteria file parses and validates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := criteriafile.Load(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}

func init() {
	criteriaCmd.AddCommand(criteriaShowCmd)
	criteriaCmd.AddCommand(criteriaValidateCmd)
}

func runCriteriaShow(cmd *cobra.Command, args []string) error {
	var model *criteria.Model
	if len(args) == 0 {
		model = criteria.Default()
		fmt.Println("built-in default criteria")
	} else {
		var err error
		model, err = criteriafile.Load(args[0])
		if err != nil {
			return err
		}
	}

	if desc := model.Description(); desc != "" {
		fmt.Printf("description: %s\n", desc)
	}

	for _, section := range []criteria.Section{criteria.SectionInclusion, criteria.SectionExclusion} {
		fmt.Printf("%s:\n", section)
		for _, category := range model.Categories(section) {
			keywords := model.Keywords(section, category)
			fmt.Printf("  %s (%d keywords)\n", category, len(keywords))
		}
	}

	plan := model.Plan()
	fmt.Printf("rule chain:\n  1. primary topic gate on %q", plan.Primary)
	if plan.Competing != "" {
		fmt.Printf(" (competing: %q, %d override tuple(s))", plan.Competing, len(plan.Overrides))
	}
	fmt.Println()
	for i, guard := range plan.Chain {
		kind := "forbid"
		if guard.Require {
			kind = "require"
		}
		fmt.Printf("  %d. %s %s/%s -> %q\n", i+2, kind, guard.Section, guard.Category, guard.Reason)
	}
	return nil
}
