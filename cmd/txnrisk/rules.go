package main

import (
	"github.com/Veraticus/txnrisk/internal/classification"
	"github.com/Veraticus/txnrisk/internal/cli"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the active classification rules",
		Long: `Show the active classification rules in precedence order.

With --yaml the table is printed in the rule-file format accepted by --rules,
which is a convenient starting point for a custom table:

  txnrisk rules --yaml > rules.yaml
  txnrisk --rules rules.yaml classify -t "Train to Lyon" -a 90`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			classifier, err := loadClassifier()
			if err != nil {
				return err
			}

			asYAML, err := cmd.Flags().GetBool("yaml")
			if err != nil {
				return err
			}

			if asYAML {
				out, err := classification.MarshalRules(classifier)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			return cli.NewRenderer(cmd.OutOrStdout()).Rules(classifier.Rules(), classifier.Defaults())
		},
	}

	cmd.Flags().Bool("yaml", false, "Print the rules as YAML")

	return cmd
}
