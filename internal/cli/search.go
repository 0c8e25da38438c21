package cli

import (
	"strings"

	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic search over memories",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (default 10)")
	cmd.Flags().StringP("context", "c", "", "Filter by context path")
	cmd.Flags().String("type", "", "Filter by memory type")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	contextPath, _ := cmd.Flags().GetString("context")
	memoryType, _ := cmd.Flags().GetString("type")

	result, err := newClient().Query(cmd.Context(), vxmcp.QueryInput{
		Query:      strings.Join(args, " "),
		Limit:      limit,
		Context:    contextPath,
		MemoryType: parseMemoryType(memoryType),
	})
	if err != nil {
		exitErr("search", err)
	}
	printMemories(result.Memories, result.Total)
}
