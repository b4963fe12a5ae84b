package apiapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authsvc "github.com/presetapp/gigboard/internal/services/auth"
	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
	profilesvc "github.com/presetapp/gigboard/internal/services/profiles"
	savedsvc "github.com/presetapp/gigboard/internal/services/saved"
	httperrors "github.com/presetapp/gigboard/internal/transport/http/errors"
	"github.com/presetapp/gigboard/internal/transport/http/handlers"
)

type Dependencies struct {
	GigService     *gigsvc.Service
	SavedService   *savedsvc.Service
	ProfileService *profilesvc.Service
	JWTManager     *authsvc.JWTManager
	HealthChecks   map[string]handlers.HealthCheck
	Logger         *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)
	gigsHandler := handlers.NewGigsHandler(deps.GigService, deps.SavedService)
	referenceHandler := handlers.NewReferenceHandler(deps.GigService)
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)

	requireAuth := AuthMiddleware(deps.JWTManager, deps.Logger)
	optionalAuth := OptionalAuth(deps.JWTManager, deps.Logger)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/gigs", func(gigs chi.Router) {
			gigs.With(optionalAuth).Get("/", gigsHandler.List)
			gigs.With(requireAuth).Get("/saved", gigsHandler.Saved)
			gigs.With(optionalAuth).Get("/{id}", gigsHandler.Get)
			gigs.With(requireAuth).Post("/{id}/save", gigsHandler.ToggleSave)
		})

		v1.Route("/reference", func(ref chi.Router) {
			ref.Get("/palettes", referenceHandler.Palettes)
			ref.Get("/tags", referenceHandler.Tags)
			ref.Get("/role-types", referenceHandler.RoleTypes)
			ref.Get("/specializations", referenceHandler.Specializations)
			ref.Get("/labels", referenceHandler.Labels)
		})

		v1.Group(func(private chi.Router) {
			private.Use(requireAuth)
			private.Get("/profile", profileHandler.Get)
			private.Patch("/profile/{section}", profileHandler.UpdateSection)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.Write(w, http.StatusNotFound, httperrors.APIError{
			Code:    "NOT_FOUND",
			Message: "route not found",
		})
	})
}
