package cli

import (
	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a memory",
		Long:  "Update fields of an existing memory. Only flags that are set are sent.",
		Args:  cobra.ExactArgs(1),
		Run:   runUpdate,
	}

	cmd.Flags().String("content", "", "Replacement content")
	cmd.Flags().StringP("context", "c", "", "Replacement context path")
	cmd.Flags().String("type", "", "Memory type: semantic, episodic, procedural")
	cmd.Flags().Float64P("importance", "i", -1, "Importance score in [0,1]")

	RootCmd.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	in := vxmcp.UpdateInput{ID: args[0]}

	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		in.Content = &content
	}
	if cmd.Flags().Changed("context") {
		contextPath, _ := cmd.Flags().GetString("context")
		in.Context = &contextPath
	}
	if cmd.Flags().Changed("type") {
		memoryType, _ := cmd.Flags().GetString("type")
		parsed := parseMemoryType(memoryType)
		in.MemoryType = &parsed
	}
	if cmd.Flags().Changed("importance") {
		importance, _ := cmd.Flags().GetFloat64("importance")
		in.Importance = &importance
	}

	mem, err := newClient().Update(cmd.Context(), in)
	if err != nil {
		exitErr("update", err)
	}
	printMemory(mem)
}
