// Package cli implements the vx-mcp CLI commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	vxmcp "github.com/vx-nyc/vx-mcp"
)

var (
	urlFlag    string
	keyFlag    string
	sourceFlag string
	formatFlag string
	timeoutFlg time.Duration
	retriesFlg int
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "vx-mcp",
	Short: "Remote memory for AI agents",
	Long:  "A CLI for the vx memory-storage API. Store, search and assemble agent memory over HTTPS with bounded retries.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "Base URL (default: $VXMCP_BASE_URL)")
	RootCmd.PersistentFlags().StringVar(&keyFlag, "key", "", "API key (default: $VXMCP_API_KEY)")
	RootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Source tag attached to requests (default: $VXMCP_SOURCE)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().DurationVar(&timeoutFlg, "timeout", 0, "Per-attempt request timeout (default: $VXMCP_TIMEOUT_MS or 30s)")
	RootCmd.PersistentFlags().IntVar(&retriesFlg, "retries", -1, "Max retry attempts (default: $VXMCP_MAX_RETRIES or 3)")
}

// newClient builds a client from environment defaults with flag overrides.
func newClient() *vxmcp.Client {
	var opts []vxmcp.Option
	if sourceFlag != "" {
		opts = append(opts, vxmcp.WithSource(sourceFlag))
	}
	if timeoutFlg > 0 {
		opts = append(opts, vxmcp.WithTimeout(timeoutFlg))
	}
	if retriesFlg >= 0 {
		opts = append(opts, vxmcp.WithMaxRetries(retriesFlg))
	}

	var (
		client *vxmcp.Client
		err    error
	)
	if urlFlag != "" || keyFlag != "" {
		baseURL := urlFlag
		if baseURL == "" {
			baseURL = os.Getenv(vxmcp.EnvBaseURL)
		}
		apiKey := keyFlag
		if apiKey == "" {
			apiKey = os.Getenv(vxmcp.EnvAPIKey)
		}
		client, err = vxmcp.New(baseURL, apiKey, opts...)
	} else {
		client, err = vxmcp.NewFromEnv(opts...)
	}
	if err != nil {
		exitErr("configure client", err)
	}
	return client
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	if vxmcp.IsRetryable(err) {
		fmt.Fprintln(os.Stderr, "the failure looks transient; retrying may succeed")
	}
	os.Exit(1)
}
