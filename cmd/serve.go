package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/odyssey-gateway/config"
	"github.com/chinmay1088/odyssey-gateway/gateway"
)

// shutdownTimeout bounds how long in-flight requests get on exit
const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST gateway",
	Long: `Start the REST gateway and keep the rippled connection open until
interrupted. The platform table and provider endpoints are fixed from the
production setting for the lifetime of the process.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.String("listen", ":3000", "address to listen on")
	flags.Duration("timeout", 30*time.Second, "deadline for each provider call")
	flags.String("xrp-server", "", "rippled WebSocket URL (defaults to the network's public server)")

	for key, flag := range map[string]string{
		config.KeyListen:    "listen",
		config.KeyTimeout:   "timeout",
		config.KeyXRPServer: "xrp-server",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	server, err := gateway.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to build gateway: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledgerDone := make(chan struct{})
	go func() {
		defer close(ledgerDone)
		if err := server.Clients.Ledger.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("XRP ledger connection stopped")
		}
	}()

	printBanner(cfg, server)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start()
	}()

	select {
	case err := <-serveErr:
		stop()
		<-ledgerDone
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	<-ledgerDone
	return nil
}

func printBanner(cfg config.Config, server *gateway.Server) {
	network := color.YellowString("testnet")
	if cfg.Production {
		network = color.GreenString("mainnet")
	}
	fmt.Printf("Odyssey Gateway v%s\n", version)
	fmt.Printf("   Network:   %s\n", network)
	fmt.Printf("   Listening: %s\n", color.CyanString(cfg.Listen))
	fmt.Printf("   Routes:    %d\n", len(server.Router.Routes))
	fmt.Printf("   XRP:       %s\n", server.Clients.Ledger.URL())
}
