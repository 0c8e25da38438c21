package cli

import (
	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memories",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (server default 20)")
	cmd.Flags().IntP("offset", "o", 0, "Paging offset")
	cmd.Flags().StringP("context", "c", "", "Filter by context path")
	cmd.Flags().String("type", "", "Filter by memory type")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	contextPath, _ := cmd.Flags().GetString("context")
	memoryType, _ := cmd.Flags().GetString("type")

	result, err := newClient().List(cmd.Context(), vxmcp.ListInput{
		Limit:      limit,
		Offset:     offset,
		Context:    contextPath,
		MemoryType: parseMemoryType(memoryType),
	})
	if err != nil {
		exitErr("list", err)
	}
	printMemories(result.Memories, result.Total)
}
