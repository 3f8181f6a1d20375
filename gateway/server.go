// Package gateway serves the REST facade over echo. Handlers resolve the
// platform, call the provider clients and shape the result through the
// normalizer or the transaction builder.
package gateway

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/builder"
	"github.com/chinmay1088/odyssey-gateway/config"
	"github.com/chinmay1088/odyssey-gateway/platform"
)

// Router holds the route groups every handler registers on
type Router struct {
	Routes []*echo.Route
	Root   *echo.Group
	V1     *echo.Group
	Tron   *echo.Group
	XRP    *echo.Group
	V2     *echo.Group
}

// Clients is the provider client set shared by every request
type Clients struct {
	V1     *api.CryptoAPIs
	V2     *api.CryptoAPIsV2
	Tron   *api.TronGrid
	Ledger *api.XRPLedger
}

// Server keeps all the dependencies of the gateway. Everything is built once
// at startup and read-only afterwards.
type Server struct {
	Echo   *echo.Echo
	Router *Router

	Config   config.Config
	Registry *platform.Registry
	Clients  Clients
	Builder  *builder.Builder
}

// NewClients builds the provider clients for the configured network
func NewClients(cfg config.Config) Clients {
	xrpServer := cfg.XRPServer
	if xrpServer == "" {
		xrpServer = api.XRPServer(cfg.Production)
	}
	return Clients{
		V1:     api.NewCryptoAPIs(api.CryptoAPIsV1URL, cfg.CryptoAPIKey, cfg.Timeout),
		V2:     api.NewCryptoAPIsV2(api.CryptoAPIsV2URL, cfg.CryptoAPIKey, cfg.Timeout),
		Tron:   api.NewTronGrid(api.TronGridURL(cfg.Production), cfg.TronGridKey, cfg.Timeout),
		Ledger: api.NewXRPLedger(xrpServer, cfg.Timeout),
	}
}

// NewServer loads the registry for cfg and wires the default clients
func NewServer(cfg config.Config) (*Server, error) {
	registry, err := platform.NewRegistry(cfg.Production)
	if err != nil {
		return nil, err
	}
	return New(cfg, registry, NewClients(cfg)), nil
}

// New wires a server from already built components
func New(cfg config.Config, registry *platform.Registry, clients Clients) *Server {
	s := &Server{
		Config:   cfg,
		Registry: registry,
		Clients:  clients,
		Builder:  builder.New(registry, clients.V1, clients.Tron, clients.Ledger),
	}
	s.initEcho()
	s.initRouter()
	return s
}

func (s *Server) initEcho() {
	s.Echo = echo.New()
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.HTTPErrorHandler = s.httpErrorHandler
	s.Echo.Use(requestLogger(), recoverer())
}

// Start serves until Shutdown. It returns http.ErrServerClosed after a
// graceful shutdown.
func (s *Server) Start() error {
	log.Info().
		Str("listen", s.Config.Listen).
		Bool("production", s.Config.Production).
		Str("xrp_server", s.Clients.Ledger.URL()).
		Msg("Starting gateway")
	return s.Echo.Start(s.Config.Listen)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down gateway")
	return s.Echo.Shutdown(ctx)
}
