package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/util"
)

func GetAddressTokensRoute(s *Server) *echo.Route {
	return s.Router.V2.GET("/blockchain-data/:name/:network/addresses/:address/tokens", getAddressTokensHandler(s))
}

func getAddressTokensHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if _, err := s.Registry.Lookup(c.Param("name")); err != nil {
			return err
		}

		raw, err := s.Clients.V2.AddressTokens(ctx, c.Param("name"), c.Param("network"), c.Param("address"))
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}

func GetWalletAssetsRoute(s *Server) *echo.Route {
	return s.Router.V2.GET("/wallet-as-a-service/wallets/:walletId/:blockchain/:network", getWalletAssetsHandler(s))
}

func getWalletAssetsHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		walletID := c.Param("walletId")

		raw, err := s.Clients.V2.WalletAssets(ctx, walletID, c.Param("blockchain"), c.Param("network"))
		if err != nil {
			return err
		}

		util.LogFromContext(ctx).Info().
			Str("wallet", walletID).
			Int("nfts", api.NonFungibleTokenCount(raw)).
			Msg("Wallet assets fetched")
		return c.JSONBlob(http.StatusOK, raw)
	}
}

func PostTransactionRequestRoute(s *Server) *echo.Route {
	return s.Router.V2.POST("/wallet-as-a-service/wallets/:walletId/:blockchain/:network/addresses/:address/transaction-requests",
		postTransactionRequestHandler(s))
}

func postTransactionRequestHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req api.TransactionRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.RecipientAddress == "" {
			return badRequest("recipientAddress is required")
		}

		raw, err := s.Clients.V2.CreateTransactionRequest(ctx,
			c.Param("walletId"), c.Param("blockchain"), c.Param("network"), c.Param("address"), req)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}

func GetAllAssetsRoute(s *Server) *echo.Route {
	return s.Router.V2.GET("/wallet-as-a-service/wallets/all-assets", getAllAssetsHandler(s))
}

func getAllAssetsHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		raw, err := s.Clients.V2.AllAssets(ctx)
		if err != nil {
			return err
		}

		util.LogFromContext(ctx).Info().
			Int("nfts", api.NonFungibleTokenCount(raw)).
			Msg("Wallet assets fetched")
		return c.JSONBlob(http.StatusOK, raw)
	}
}
