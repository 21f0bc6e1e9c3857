package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarbyte/shellstorm/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve shellstorm over SSH",
	Long: `Run a multi-player SSH server. Every connection gets its own
simulation; all players share one leaderboard.

Examples:
  shellstorm serve
  shellstorm serve --ssh :2222 --db /var/lib/shellstorm/runs.db

Then connect with: ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "host key path (default ~/.shellstorm/host_key)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "path to a custom simulation config YAML")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "drop idle connections after this long")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.ConfigPath = flagServeConfig
	cfg.IdleTimeout = flagIdleTimeout

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("cannot start SSH server: %w", err)
	}
	return server.ListenAndServe()
}
