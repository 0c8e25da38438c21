package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/vx-nyc/vx-mcp/internal/cli"
)

func main() {
	// Local .env files supply VXMCP_* defaults; absence is not an error.
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
