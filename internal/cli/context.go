package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context <topic>",
		Short: "Assemble a context packet for a topic",
		Args:  cobra.MinimumNArgs(1),
		Run:   runContext,
	}

	cmd.Flags().Int("max-tokens", 0, "Token budget for the packet (default 4000)")

	RootCmd.AddCommand(cmd)
}

func runContext(cmd *cobra.Command, args []string) {
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")

	packet, err := newClient().FetchContext(cmd.Context(), vxmcp.ContextInput{
		Topic:     strings.Join(args, " "),
		MaxTokens: maxTokens,
	})
	if err != nil {
		exitErr("context", err)
	}

	if formatFlag == "json" {
		printJSON(packet)
		return
	}
	fmt.Println(packet.Context)
	fmt.Printf("(%d memories)\n", packet.MemoryCount)
}
