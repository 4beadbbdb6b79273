package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/app"
)

func (c *CLI) newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit [files...]",
		Short: "Compile files, or every file of the project",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout, _ := cmd.Flags().GetBool("stdout")

			return c.app.Emit(cmd.Context(), args, app.EmitOptions{
				Options: options(cmd),
				Stdout:  stdout,
			})
		},
	}
	cmd.Flags().Bool("stdout", false, "Print the JavaScript instead of writing output files")
	return cmd
}
