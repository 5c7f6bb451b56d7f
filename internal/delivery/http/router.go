package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"invitationtracker/internal/delivery/http/controllers"
	"invitationtracker/internal/delivery/http/middleware"
	"invitationtracker/internal/delivery/web"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	areaController *controllers.AreaController,
	invitationController *controllers.InvitationController,
	page *web.Handler,
	metrics *middleware.Metrics,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Client application
	mux.HandleFunc("GET /{$}", page.Index)

	// Areas
	mux.HandleFunc("GET /areas", areaController.ListAreas)
	mux.HandleFunc("POST /areas", areaController.CreateArea)
	mux.HandleFunc("GET /areas/seed", areaController.SeedAreas)

	// Invitations
	mux.HandleFunc("GET /invitations", invitationController.ListInvitations)
	mux.HandleFunc("POST /invitations", invitationController.CreateInvitation)
	mux.HandleFunc("PUT /invitations", invitationController.UpdateInvitation)
	mux.HandleFunc("DELETE /invitations", invitationController.DeleteInvitation)

	// Observability
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain:
// recovery, metrics, request logging, CORS.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, metrics *middleware.Metrics, allowedOrigins []string) http.Handler {
	var h http.Handler = mux
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.Logging(logger, h)
	h = metrics.Instrument(mux, h)
	return middleware.Recovery(logger, h)
}
