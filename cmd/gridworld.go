package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goqlearn/examples"
)

func GridworldCommand() *cobra.Command {
	var rows int
	var cols int

	cmd := &cobra.Command{
		Use:   "gridworld",
		Short: "Reach the top right corner of a gridworld",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := options(cmd, examples.DefaultFileConfig)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd)
			defer cancel()
			return examples.Gridworld(ctx, o, rows, cols)
		},
	}
	cmd.PersistentFlags().IntVar(&rows, "rows", 5, "Rows of the gridworld")
	cmd.PersistentFlags().IntVar(&cols, "cols", 5, "Columns of the gridworld")
	return cmd
}
