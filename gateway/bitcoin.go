package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/builder"
)

type generateWalletRequest struct {
	WalletName   string           `json:"walletName"`
	AddressCount *decimal.Decimal `json:"addressCount"`
	Password     string           `json:"password"`
}

func PostGenerateWalletRoute(s *Server) *echo.Route {
	return s.Router.V1.POST("/bitcoin/wallet/generate", postGenerateWalletHandler(s))
}

func postGenerateWalletHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		btc, err := s.Registry.Lookup("bitcoin")
		if err != nil {
			return err
		}

		var req generateWalletRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.WalletName == "" || req.Password == "" || req.AddressCount == nil || req.AddressCount.IsZero() {
			return badRequest("walletName, password and addressCount are required")
		}

		raw, err := s.Clients.V1.CreateHDWallet(ctx, btc, api.HDWalletSpec{
			WalletName:   req.WalletName,
			AddressCount: *req.AddressCount,
			Password:     req.Password,
		})
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}

func PostHDWalletTransactionRoute(s *Server) *echo.Route {
	return s.Router.V1.POST("/bitcoin/txs/hdwallet", postHDWalletTransactionHandler(s))
}

func postHDWalletTransactionHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req builder.HDWalletRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		raw, err := s.Builder.BitcoinHDWallet(c.Request().Context(), req)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}
