package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-github-login/github"
	"github.com/jrsteele09/go-github-login/internal/config"
	"github.com/jrsteele09/go-github-login/server/loginsession"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// GithubProvider is the outbound half of the OAuth flow: authorize-URL
// construction, code exchange, and profile fetch. Satisfied by
// *github.Provider; swappable for a fake in tests.
type GithubProvider interface {
	AuthorizationURL() string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUser(ctx context.Context, accessToken string) (*github.User, error)
}

var _ GithubProvider = (*github.Provider)(nil)

type Server struct {
	env           string // Environment (e.g., "DEV", "production")
	mux           *http.ServeMux
	routes        []string
	config        config.Config
	github        GithubProvider
	loginSessions loginsession.Repo
}

func New(config config.Config, provider GithubProvider, loginSessionRepo loginsession.Repo) *Server {
	s := &Server{
		mux:           http.NewServeMux(),
		config:        config,
		github:        provider,
		loginSessions: loginSessionRepo,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

// RunSessionSweeper periodically removes expired login sessions until the
// context is cancelled.
func (s *Server) RunSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.config.GetSessionCleanupInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if err := s.loginSessions.DeleteExpired(t); err != nil {
				zlog.Err(err).Msg("Session sweep failed")
			}
		}
	}
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
