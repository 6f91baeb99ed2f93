package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
	flagIdle    time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arcade over SSH",
	Long: `Serve the arcade menu over SSH. Every connection gets its own
session; all sessions share one scores database.

Without --host-key a key is generated at ~/.arcade/host_key.

Examples:
  arcade serve
  arcade serve --ssh :2222 --idle-timeout 10m
  arcade serve --difficulty hard --db ./scores.db

Connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file")
	serveCmd.Flags().DurationVar(&flagIdle, "idle-timeout", defaults.IdleTimeout, "Close sessions idle this long")
	addGameFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog := mustLogger(false)
	defer closeLog()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdle,
		Game:        opts,
		FPS:         flagFPS,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("cannot start server", "error", err)
		return
	}

	fmt.Printf("Arcade listening on %s, connect with: ssh localhost -p %s\n", server.Addr(), port(server.Addr()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Serve(ctx); err != nil {
		logger.Error("server stopped", "error", err)
	}
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
