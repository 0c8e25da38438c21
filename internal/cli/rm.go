package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a memory",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	if err := newClient().Delete(cmd.Context(), args[0]); err != nil {
		exitErr("rm", err)
	}
	if formatFlag != "json" {
		fmt.Printf("deleted %s\n", args[0])
	}
}
