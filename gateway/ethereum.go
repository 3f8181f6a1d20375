package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chinmay1088/odyssey-gateway/builder"
	"github.com/chinmay1088/odyssey-gateway/normalize"
)

func GetTokenTransfersRoute(s *Server) *echo.Route {
	return s.Router.V1.GET("/ethereum/addresses/:address/tokens/:token", getTokenTransfersHandler(s))
}

func getTokenTransfersHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		eth, err := s.Registry.Lookup("ethereum")
		if err != nil {
			return err
		}
		token, err := s.Registry.LookupToken(c.Param("token"))
		if err != nil {
			return err
		}

		payload, err := s.Clients.V1.TokenTransfers(ctx, eth, c.Param("address"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, normalize.TokenTransfers(payload, token))
	}
}

func GetTokenBalanceRoute(s *Server) *echo.Route {
	return s.Router.V1.GET("/ethereum/addresses/:address/tokens/:token/balance", getTokenBalanceHandler(s))
}

// getTokenBalanceHandler returns the token list entry of the address plus
// the address itself, or {} when the address does not hold the token
func getTokenBalanceHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		address := c.Param("address")

		eth, err := s.Registry.Lookup("ethereum")
		if err != nil {
			return err
		}
		token, err := s.Registry.LookupToken(c.Param("token"))
		if err != nil {
			return err
		}

		tokens, err := s.Clients.V1.TokenBalances(ctx, eth, address)
		if err != nil {
			return err
		}
		entry, ok := normalize.FindToken(tokens, token.Name)
		if !ok {
			return c.JSONBlob(http.StatusOK, builder.Empty)
		}

		encoded, err := json.Marshal(address)
		if err != nil {
			return err
		}
		entry["address"] = encoded
		return c.JSON(http.StatusOK, entry)
	}
}

type generateAccountRequest struct {
	Password string `json:"password"`
}

func PostGenerateAccountRoute(s *Server) *echo.Route {
	return s.Router.V1.POST("/ethereum/account/generate", postGenerateAccountHandler(s))
}

func postGenerateAccountHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		eth, err := s.Registry.Lookup("ethereum")
		if err != nil {
			return err
		}

		var req generateAccountRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Password == "" {
			return badRequest("password is required")
		}

		raw, err := s.Clients.V1.GenerateAccount(ctx, eth, req.Password)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}
