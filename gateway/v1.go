package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/chinmay1088/odyssey-gateway/builder"
	"github.com/chinmay1088/odyssey-gateway/normalize"
)

func PostGenerateAddressRoute(s *Server) *echo.Route {
	return s.Router.V1.POST("/:name/addresses/generate", postGenerateAddressHandler(s))
}

func postGenerateAddressHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		p, err := s.Registry.Lookup(c.Param("name"))
		if err != nil {
			return err
		}

		raw, err := s.Clients.V1.GenerateAddress(ctx, p)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}

func GetAddressTransactionsRoute(s *Server) *echo.Route {
	return s.Router.V1.GET("/:name/addresses/:address", getAddressTransactionsHandler(s))
}

func getAddressTransactionsHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		p, err := s.Registry.Lookup(c.Param("name"))
		if err != nil {
			return err
		}

		payload, err := s.Clients.V1.AddressTransactions(ctx, p, c.Param("address"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.CoinTransactions(payload))
	}
}

func GetAddressBalanceRoute(s *Server) *echo.Route {
	return s.Router.V1.GET("/:name/addresses/:address/balance", getAddressBalanceHandler(s))
}

// getAddressBalanceHandler reports a coin balance as the aggregator gives
// it. Ethereum also lists the address tokens. A token is looked up in the
// parent's token list and an address without it gets {}.
func getAddressBalanceHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		address := c.Param("address")

		p, err := s.Registry.Lookup(c.Param("name"))
		if err != nil {
			return err
		}

		if p.IsToken() {
			tokens, err := s.Clients.V1.TokenBalances(ctx, p, address)
			if err != nil {
				return err
			}
			entry, ok := normalize.FindToken(tokens, p.Name)
			if !ok {
				return c.JSONBlob(http.StatusOK, builder.Empty)
			}
			return c.JSON(http.StatusOK, normalize.TokenBalance(address, p, entry))
		}

		var info, tokens json.RawMessage
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			info, err = s.Clients.V1.AddressInfo(gctx, p, address)
			return err
		})
		if p.Key == "ethereum" {
			g.Go(func() error {
				var err error
				tokens, err = s.Clients.V1.TokenBalances(gctx, p, address)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		balance := normalize.CoinBalance(address, p, info)
		if p.Key == "ethereum" {
			balance.Tokens = tokens
		}
		return c.JSON(http.StatusOK, balance)
	}
}

func GetTransactionRoute(s *Server) *echo.Route {
	return s.Router.V1.GET("/:name/txs/:id", getTransactionHandler(s))
}

// getTransactionHandler serves the basic txid view for bitcoin and the
// hash view for ethereum and its tokens
func getTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("id")

		p, err := s.Registry.Lookup(c.Param("name"))
		if err != nil {
			return err
		}
		parent, err := s.Registry.Parent(p)
		if err != nil {
			return err
		}

		if parent.Key == "bitcoin" {
			payload, err := s.Clients.V1.TxByTxID(ctx, parent, id)
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, normalize.BitcoinTransactionDetail(id, payload))
		}

		payload, err := s.Clients.V1.TxByHash(ctx, parent, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.EthereumTransactionDetail(id, parent, payload))
	}
}

func PostTransactionRoute(s *Server) *echo.Route {
	return s.Router.V1.POST("/:name/txs/new", postTransactionHandler(s))
}

func postTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req builder.TxRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		raw, err := s.Builder.Transaction(c.Request().Context(), c.Param("name"), req)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}
