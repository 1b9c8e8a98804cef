// Package main contains the txnrisk CLI commands.
package main

import (
	"github.com/Veraticus/txnrisk/internal/cli"
	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a transaction using rule-based classification",
		Long: `Classify a transaction by its title and amount.

The category is the first rule (in table order) with a keyword contained in
the title, or "other" when nothing matches. The risk level comes from that
category's amount thresholds.

Examples:
  txnrisk classify --title "Flight to Paris - Air France" --amount 1200
  txnrisk classify -t "Restaurant dinner" -a 25`,
		RunE: runClassify,
	}

	addTransactionFlags(cmd)

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	txn, err := transactionFromFlags(cmd)
	if err != nil {
		return err
	}

	classifier, err := loadClassifier()
	if err != nil {
		return err
	}

	result := classifier.Classify(txn)

	common.LogDebug("Transaction classified", common.Fields{
		"transaction_id": txn.ID,
		"category":       result.Category,
		"risk":           result.RiskLevel,
	})

	return cli.NewRenderer(cmd.OutOrStdout()).
		Result(cli.SearchIcon, "Transaction Classification Result (Rule-based)", txn, result)
}
