package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goqlearn/examples"
)

func MouseCommand() *cobra.Command {
	var legal bool

	cmd := &cobra.Command{
		Use:   "mouse",
		Short: "Find the cheese while avoiding the poison",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := options(cmd, examples.MouseDeepQ)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd)
			defer cancel()
			return examples.Mouse(ctx, o, legal)
		},
	}
	cmd.PersistentFlags().BoolVar(&legal, "legal", false, "Only offer moves that stay on the board")
	return cmd
}
