package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/builder"
	"github.com/chinmay1088/odyssey-gateway/chains/xrp"
	"github.com/chinmay1088/odyssey-gateway/normalize"
)

func PostXRPGenerateAddressRoute(s *Server) *echo.Route {
	return s.Router.XRP.POST("/addresses/generate", postXRPGenerateAddressHandler(s))
}

// postXRPGenerateAddressHandler creates a wallet locally. The X-address
// prefix follows the active network.
func postXRPGenerateAddressHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		wallet, err := xrp.GenerateXAddress(!s.Registry.Production())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, wallet)
	}
}

func GetXRPTransactionsRoute(s *Server) *echo.Route {
	return s.Router.XRP.GET("/addresses/:address", getXRPTransactionsHandler(s))
}

// getXRPTransactionsHandler lists the account history over every ledger the
// server holds
func getXRPTransactionsHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		p, err := s.Registry.Lookup("xrp")
		if err != nil {
			return err
		}
		account, _, err := xrp.ClassicAddress(c.Param("address"))
		if err != nil {
			return badRequest("%v", err)
		}

		info, err := s.Clients.Ledger.ServerInfo(ctx)
		if err != nil {
			return err
		}
		transactions, err := s.Clients.Ledger.AccountTransactions(ctx, account, api.MinLedger(info.CompleteLedgers))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.XRPTransactions(p, transactions))
	}
}

func GetXRPBalanceRoute(s *Server) *echo.Route {
	return s.Router.XRP.GET("/addresses/:address/balance", getXRPBalanceHandler(s))
}

func getXRPBalanceHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		address := c.Param("address")

		p, err := s.Registry.Lookup("xrp")
		if err != nil {
			return err
		}
		account, _, err := xrp.ClassicAddress(address)
		if err != nil {
			return badRequest("%v", err)
		}

		info, err := s.Clients.Ledger.AccountInfo(ctx, account)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.NativeBalance(address, p, info.Balance))
	}
}

func GetXRPTransactionRoute(s *Server) *echo.Route {
	return s.Router.XRP.GET("/txs/:id", getXRPTransactionHandler(s))
}

// getXRPTransactionHandler reads the transaction from the aggregator, not the ledger
func getXRPTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("id")

		p, err := s.Registry.Lookup("xrp")
		if err != nil {
			return err
		}

		payload, err := s.Clients.V1.TxByHash(ctx, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.XRPAggregatorTransactionDetail(id, payload))
	}
}

func PostXRPTransactionRoute(s *Server) *echo.Route {
	return s.Router.XRP.POST("/txs/new", postXRPTransactionHandler(s))
}

func postXRPTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req builder.XRPRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		raw, err := s.Builder.XRP(c.Request().Context(), req)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}
