package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe service reachability",
		Run:   runHealth,
	}

	RootCmd.AddCommand(cmd)
}

func runHealth(cmd *cobra.Command, args []string) {
	status := newClient().Health(cmd.Context())

	if formatFlag == "json" {
		printJSON(map[string]any{
			"healthy":   status.Healthy,
			"latencyMs": status.Latency.Milliseconds(),
			"error":     status.Error,
		})
	} else if status.Healthy {
		fmt.Printf("healthy (%v)\n", status.Latency)
	} else {
		fmt.Printf("unreachable (%v): %s\n", status.Latency, status.Error)
	}

	if !status.Healthy {
		os.Exit(1)
	}
}
