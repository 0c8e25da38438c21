package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func init() {
	cmd := &cobra.Command{
		Use:   "store [content]",
		Short: "Store a memory",
		Long:  "Store a memory. Content can be a positional arg or piped via stdin.",
		Run:   runStore,
	}

	cmd.Flags().StringP("context", "c", "", "Context path (e.g. project/billing)")
	cmd.Flags().String("type", "", "Memory type: semantic, episodic, procedural")
	cmd.Flags().Float64P("importance", "i", -1, "Importance score in [0,1]")
	cmd.Flags().String("memory-source", "", "Source tag stored on the record")

	RootCmd.AddCommand(cmd)
}

func runStore(cmd *cobra.Command, args []string) {
	contextPath, _ := cmd.Flags().GetString("context")
	memoryType, _ := cmd.Flags().GetString("type")
	importance, _ := cmd.Flags().GetFloat64("importance")
	memorySource, _ := cmd.Flags().GetString("memory-source")

	// Content: positional arg first, then stdin.
	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}

	if strings.TrimSpace(content) == "" {
		exitErr("store", fmt.Errorf("content is required (positional arg or stdin)"))
	}

	in := vxmcp.StoreInput{
		Content:    content,
		Context:    contextPath,
		MemoryType: parseMemoryType(memoryType),
		Source:     memorySource,
	}
	if cmd.Flags().Changed("importance") {
		in.Importance = &importance
	}

	mem, err := newClient().Store(cmd.Context(), in)
	if err != nil {
		exitErr("store", err)
	}
	printMemory(mem)
}

func parseMemoryType(s string) vxmcp.MemoryType {
	return vxmcp.MemoryType(strings.ToUpper(strings.TrimSpace(s)))
}
