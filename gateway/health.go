package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ledgerHealth struct {
	URL       string `json:"url"`
	Connected bool   `json:"connected"`
}

type healthResponse struct {
	Status     string       `json:"status"`
	Production bool         `json:"production"`
	XRPLedger  ledgerHealth `json:"xrpLedger"`
}

func GetHealthRoute(s *Server) *echo.Route {
	return s.Router.Root.GET("/healthz", getHealthHandler(s))
}

// getHealthHandler always answers 200. A dropped ledger connection is
// reported, not treated as fatal, since Run keeps redialing.
func getHealthHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{
			Status:     "ok",
			Production: s.Registry.Production(),
			XRPLedger: ledgerHealth{
				URL:       s.Clients.Ledger.URL(),
				Connected: s.Clients.Ledger.Connected(),
			},
		})
	}
}
