package server

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteHandler("GET "+RouteGithubLogin, ChainMiddleware(s.GithubLoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteGithubCallback, ChainMiddleware(s.OAuthCallbackHandler(), s.APIMiddleware()...))

	// SESSION
	s.RegisterRouteHandler("GET "+RouteCurrentUser, ChainMiddleware(s.CurrentUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// CORS preflights for the cross-origin frontend. The method-qualified
	// patterns above never match OPTIONS, so preflights need their own route
	// through the CORS middleware.
	s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))
}
