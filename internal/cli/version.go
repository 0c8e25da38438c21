package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if formatFlag == "json" {
				printJSON(vxmcp.GetVersionInfo())
				return
			}
			fmt.Println(vxmcp.GetVersion())
		},
	}

	RootCmd.AddCommand(cmd)
}
