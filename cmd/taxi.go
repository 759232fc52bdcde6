package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goqlearn/examples"
)

func TaxiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "taxi",
		Short: "Pick up a passenger and drop them off",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := options(cmd, examples.TaxiDeepQ)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd)
			defer cancel()
			return examples.Taxi(ctx, o)
		},
	}
}
