package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flags/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the home screen and its
own draw sequence. Country data and config are loaded once at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flags/host_key

Examples:
  flags serve                           # Listen on :23234 with auto-generated key
  flags serve --ssh :2222               # Listen on port 2222
  flags serve --host-key ./my_host_key  # Use specific host key
  flags serve --pack europe             # Serve a stored pack

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve() error {
	return withLogger(os.Stderr, func(logger *log.Logger) error {
		env, err := loadEnv(logger)
		if err != nil {
			return err
		}

		cfg := tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: expandHome(flagHostKey),
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		}

		server, err := tui.NewSSHServer(cfg, env)
		if err != nil {
			return err
		}

		fmt.Printf("Starting flags SSH server on %s\n", server.Addr())
		fmt.Println("Press Ctrl+C to stop")

		return server.ListenAndServe()
	})
}
