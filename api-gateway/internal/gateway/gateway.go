package gateway

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/response"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MarketSvcURL  string
	RateSvcURL    string
	RevenueSvcURL string
	JWTSecret     string
}

type Gateway struct {
	config   Config
	client   HTTPClient
	sessions auth.SessionStore
}

func NewGateway(config Config, client HTTPClient, sessions auth.SessionStore) *Gateway {
	return &Gateway{
		config:   config,
		client:   client,
		sessions: sessions,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "healthy", map[string]interface{}{
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Authenticate replaces any client-supplied identity headers with the ones proven by the bearer
// token. Requests without a token continue anonymously; an invalid or revoked token is rejected.
func (g *Gateway) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.StripHeaders(r.Header)

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			response.Error(w, apperr.Unauthorized("malformed authorization header"))
			return
		}

		claims, err := auth.ParseToken(g.config.JWTSecret, strings.TrimSpace(raw))
		if err != nil {
			log.Printf("[AUTH] rejected token: %v", err)
			response.Error(w, apperr.Unauthorized("invalid or expired token"))
			return
		}
		id, err := claims.Identity()
		if err != nil {
			log.Printf("[AUTH] rejected claims: %v", err)
			response.Error(w, apperr.Unauthorized("invalid or expired token"))
			return
		}
		if err := g.sessions.Validate(r.Context(), id.UserID, claims.SessionID); err != nil {
			log.Printf("[AUTH] session check failed for user %s: %v", id.UserID, err)
			response.Error(w, apperr.Unauthorized("session has been revoked"))
			return
		}

		auth.SetHeaders(r.Header, id)
		next.ServeHTTP(w, r)
	})
}

// Logout rotates the caller's session id, which invalidates every token issued so far.
func (g *Gateway) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := auth.FromRequest(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if _, err := g.sessions.Rotate(r.Context(), id.UserID); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "logged out", nil)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		response.Error(w, err)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		response.Fail(w, http.StatusBadGateway, "upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// upstream picks the owning service by path prefix. Everything under /api/ that is not a review
// or revenue route belongs to market-svc.
func (g *Gateway) upstream(path string) string {
	switch {
	case path == "/api/reviews" || strings.HasPrefix(path, "/api/reviews/"):
		return g.config.RateSvcURL
	case path == "/api/revenue" || strings.HasPrefix(path, "/api/revenue/"):
		return g.config.RevenueSvcURL
	default:
		return g.config.MarketSvcURL
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("ROUTE: %s %s", r.Method, r.URL.Path)
	g.ProxyRequest(w, r, g.upstream(r.URL.Path))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(g.Authenticate)
	api.HandleFunc("/auth/logout", g.Logout).Methods("POST")
	api.PathPrefix("/").HandlerFunc(g.RouteHandler)

	r.PathPrefix("/uploads/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.ProxyRequest(w, r, g.config.MarketSvcURL)
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusNotFound, "route not found")
	})
	return r
}
