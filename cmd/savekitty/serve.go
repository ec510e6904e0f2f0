package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/savekitty/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the room over SSH",
	Long: `Start an SSH server so you can visit your cat from another machine.

Every connection opens its own view of the same room: feed the cat from
one terminal and the other sees it right away.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.savekitty/host_key

Examples:
  savekitty serve                           # Listen on :23234 with auto-generated key
  savekitty serve --ssh :2222               # Listen on port 2222
  savekitty serve --host-key ./my_host_key  # Use specific host key

Connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	return withGame(func(g *game) error {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.Session.ReminderDelay = g.cfg.Reminder.Delay

		server, err := tui.NewSSHServer(g.store, cfg, g.logger.WithPrefix("savekitty-ssh"))
		if err != nil {
			return fmt.Errorf("cannot create server: %w", err)
		}

		fmt.Printf("Serving the room on %s\n", server.Addr())
		fmt.Println("Press Ctrl+C to stop")

		return server.ListenAndServe()
	})
}
