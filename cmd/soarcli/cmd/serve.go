package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SoarGroup/soarcli/internal/remote"
	"github.com/SoarGroup/soarcli/pkg/core/version"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Remote WebSocket console",
	Long: `Serves the command interpreter over WebSocket at /ws. Every
connection gets its own session; [remote] shared_agent decides whether
connections also share one agent. Browser pages are accepted only from
the server's own host and [remote] allowed_origins. The source command is
not available to remote sessions.

Messages:
  {"type":"eval","payload":{"input":"print -c"}}
  {"type":"ping"}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfgFile, true)
	if err != nil {
		return err
	}
	defer a.Close()

	rc := a.cfg.Remote
	cfg := remote.Config{
		Host:           rc.Host,
		Port:           rc.Port,
		ReadTimeout:    rc.ReadTimeout.Duration,
		WriteTimeout:   rc.WriteTimeout.Duration,
		IdleTimeout:    rc.IdleTimeout.Duration,
		Version:        version.App,
		AliasLines:     a.aliasLines,
		History:        a.store,
		AllowedOrigins: rc.AllowedOrigins,
		Logger:         a.logger,
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if rc.SharedAgent {
		cfg.Agent = a.agent
	}

	srv := remote.New(cfg)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Remote console listening on ws://%s/ws\n", srv.Address())

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}
