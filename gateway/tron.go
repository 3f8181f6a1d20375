package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chinmay1088/odyssey-gateway/builder"
	"github.com/chinmay1088/odyssey-gateway/chains/tron"
	"github.com/chinmay1088/odyssey-gateway/normalize"
)

func PostTronGenerateAddressRoute(s *Server) *echo.Route {
	return s.Router.Tron.POST("/addresses/generate", postTronGenerateAddressHandler(s))
}

// postTronGenerateAddressHandler creates the key pair locally. Nothing is
// registered with the node until the account receives TRX.
func postTronGenerateAddressHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, err := tron.GenerateAccount()
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, account)
	}
}

func GetTronTransactionsRoute(s *Server) *echo.Route {
	return s.Router.Tron.GET("/addresses/:address", getTronTransactionsHandler(s))
}

func getTronTransactionsHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		p, err := s.Registry.Lookup("tron")
		if err != nil {
			return err
		}

		data, err := s.Clients.Tron.AccountTransactions(ctx, c.Param("address"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.TronTransactions(p, data))
	}
}

func GetTronBalanceRoute(s *Server) *echo.Route {
	return s.Router.Tron.GET("/addresses/:address/balance", getTronBalanceHandler(s))
}

func getTronBalanceHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		address := c.Param("address")

		p, err := s.Registry.Lookup("tron")
		if err != nil {
			return err
		}
		b58, err := tron.Base58Address(address)
		if err != nil {
			return badRequest("%v", err)
		}

		account, err := s.Clients.Tron.GetAccount(ctx, b58)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.NativeBalance(address, p, account.Balance))
	}
}

func GetTronTransactionRoute(s *Server) *echo.Route {
	return s.Router.Tron.GET("/txs/:id", getTronTransactionHandler(s))
}

func getTronTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("id")

		p, err := s.Registry.Lookup("tron")
		if err != nil {
			return err
		}

		raw, err := s.Clients.Tron.GetTransactionByID(ctx, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.TronTransactionDetail(id, p, raw))
	}
}

func PostTronTransactionRoute(s *Server) *echo.Route {
	return s.Router.Tron.POST("/txs/new", postTronTransactionHandler(s))
}

func postTronTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req builder.TronRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		raw, err := s.Builder.Tron(c.Request().Context(), req)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}
