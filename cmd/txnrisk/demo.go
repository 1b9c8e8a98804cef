package main

import (
	"fmt"

	"github.com/Veraticus/txnrisk/internal/cli"
	"github.com/Veraticus/txnrisk/internal/model"
	"github.com/spf13/cobra"
)

// demoSamples are classified by the demo command.
var demoSamples = []struct {
	title  string
	amount float64
}{
	{"Flight to Paris - Air France", 1200},
	{"Amazon purchase - Electronics", 250},
	{"Restaurant dinner - Italian", 85},
	{"Movie tickets - Avengers", 45},
	{"Electricity bill - January", 120},
	{"Uber ride to airport", 35},
	{"Online clothing store", 180},
	{"Coffee shop - Starbucks", 12},
	{"Hotel booking for weekend", 350},
	{"Miscellaneous expense", 75},
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Classify a set of sample transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			classifier, err := loadClassifier()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := cli.NewRenderer(out)

			fmt.Fprintln(out, cli.FormatTitle(cli.SearchIcon, "Classifying sample transactions"))
			fmt.Fprintln(out)

			for _, s := range demoSamples {
				txn := model.NewTransaction(s.title, s.amount, now())
				if err := r.Summary(txn, classifier.Classify(txn)); err != nil {
					return err
				}
			}

			fmt.Fprintln(out, cli.FormatSuccess("Demo completed!"))
			return nil
		},
	}
}
