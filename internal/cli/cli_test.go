package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func TestParseMemoryType(t *testing.T) {
	assert.Equal(t, vxmcp.MemoryTypeSemantic, parseMemoryType("semantic"))
	assert.Equal(t, vxmcp.MemoryTypeEpisodic, parseMemoryType(" Episodic "))
	assert.Equal(t, vxmcp.MemoryTypeProcedural, parseMemoryType("PROCEDURAL"))
	assert.Equal(t, vxmcp.MemoryType(""), parseMemoryType(""))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "short", summarize("short", 10))
	assert.Equal(t, "multi line", summarize("multi\nline", 20))

	long := summarize("abcdefghijklmnopqrstuvwxyz", 10)
	assert.Len(t, long, 10)
	assert.Equal(t, "abcdefg...", long)
}

func TestRootCommandWiring(t *testing.T) {
	expected := []string{"store", "update", "rm", "search", "list", "context", "health", "version"}

	names := map[string]bool{}
	for _, cmd := range RootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range expected {
		require.True(t, names[name], "command %q not registered", name)
	}
}
