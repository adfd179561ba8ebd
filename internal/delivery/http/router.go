package http

import (
	"log/slog"
	"net/http"

	"fyyur/internal/adapters/ratelimit"
	"fyyur/internal/delivery/http/controllers"
	"fyyur/internal/delivery/http/middleware"
	"fyyur/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handler sets mounted by NewRouter.
type Controllers struct {
	Venues  *controllers.VenueController
	Artists *controllers.ArtistController
	Shows   *controllers.ShowController
	Auth    *controllers.AuthController
	Health  *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Mutating routes require an editor token and, when limiter is non-nil, are rate limited.
func NewRouter(c Controllers, verifier domain.TokenVerifier, limiter ratelimit.Limiter, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(verifier, logger)
	protect := func(next http.HandlerFunc) http.HandlerFunc {
		if limiter != nil {
			next = middleware.RateLimit(limiter, logger)(next)
		}
		return requireAuth(next)
	}

	mux.HandleFunc("GET /health", c.Health.Health)

	// Auth
	mux.HandleFunc("POST /auth/token", c.Auth.Login)

	// Venues
	mux.HandleFunc("GET /venues", c.Venues.ListVenues)
	mux.HandleFunc("POST /venues/search", c.Venues.SearchVenues)
	mux.HandleFunc("GET /venues/{venueID}", c.Venues.GetVenue)
	mux.HandleFunc("POST /venues", protect(c.Venues.CreateVenue))
	mux.HandleFunc("PUT /venues/{venueID}", protect(c.Venues.UpdateVenue))
	mux.HandleFunc("DELETE /venues/{venueID}", protect(c.Venues.DeleteVenue))

	// Artists
	mux.HandleFunc("GET /artists", c.Artists.ListArtists)
	mux.HandleFunc("POST /artists/search", c.Artists.SearchArtists)
	mux.HandleFunc("GET /artists/{artistID}", c.Artists.GetArtist)
	mux.HandleFunc("POST /artists", protect(c.Artists.CreateArtist))
	mux.HandleFunc("PUT /artists/{artistID}", protect(c.Artists.UpdateArtist))
	mux.HandleFunc("DELETE /artists/{artistID}", protect(c.Artists.DeleteArtist))

	// Shows
	mux.HandleFunc("GET /shows", c.Shows.ListShows)
	mux.HandleFunc("POST /shows", protect(c.Shows.CreateShow))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the global middleware chain. Recover sits
// outermost so a panic is still logged with its request id.
func NewHandler(mux http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	var h http.Handler = mux
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return middleware.Recover(logger, h)
}
