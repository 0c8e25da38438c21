package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		exitErr("encode output", err)
	}
}

func printMemory(m *vxmcp.Memory) {
	if formatFlag == "json" {
		printJSON(m)
		return
	}

	fmt.Printf("[%s] %s\n", m.ID, summarize(m.Content, 80))
	details := []string{"type: " + strings.ToLower(string(m.MemoryType))}
	if m.Importance != nil {
		details = append(details, fmt.Sprintf("importance: %.2f", *m.Importance))
	}
	if m.Context != "" {
		details = append(details, "context: "+m.Context)
	}
	if m.Source != "" {
		details = append(details, "source: "+m.Source)
	}
	details = append(details, "created: "+m.CreatedAt.Format(time.RFC3339))
	if m.UpdatedAt != nil {
		details = append(details, "updated: "+m.UpdatedAt.Format(time.RFC3339))
	}
	fmt.Printf("  %s\n", strings.Join(details, ", "))
}

func printMemories(memories []vxmcp.Memory, total int) {
	if formatFlag == "json" {
		printJSON(memories)
		return
	}

	if len(memories) == 0 {
		fmt.Println("no memories found")
		return
	}
	for i := range memories {
		printMemory(&memories[i])
	}
	fmt.Printf("%d of %d total\n", len(memories), total)
}

func summarize(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
