package gateway

func (s *Server) initRouter() {
	root := s.Echo.Group("")
	s.Router = &Router{
		Root: root,
		V1:   root.Group("/v1"),
		Tron: root.Group("/v1/tron"),
		XRP:  root.Group("/v1/xrp"),
		V2:   root.Group("/v2"),
	}

	s.Router.Routes = append(s.Router.Routes,
		GetHealthRoute(s),

		// aggregator chains
		PostGenerateAddressRoute(s),
		GetAddressTransactionsRoute(s),
		GetAddressBalanceRoute(s),
		GetTransactionRoute(s),
		PostTransactionRoute(s),

		// ethereum
		GetTokenTransfersRoute(s),
		GetTokenBalanceRoute(s),
		PostGenerateAccountRoute(s),

		// bitcoin
		PostGenerateWalletRoute(s),
		PostHDWalletTransactionRoute(s),

		// tron
		PostTronGenerateAddressRoute(s),
		GetTronTransactionsRoute(s),
		GetTronBalanceRoute(s),
		GetTronTransactionRoute(s),
		PostTronTransactionRoute(s),

		// xrp
		PostXRPGenerateAddressRoute(s),
		GetXRPTransactionsRoute(s),
		GetXRPBalanceRoute(s),
		GetXRPTransactionRoute(s),
		PostXRPTransactionRoute(s),

		// v2 passthrough
		GetAddressTokensRoute(s),
		GetWalletAssetsRoute(s),
		PostTransactionRequestRoute(s),
		GetAllAssetsRoute(s),
	)
}
