package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/middleware"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/jwt"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth    AuthHandler
	Profile ProfileHandler
	Leave   LeaveHandler
	Review  ReviewHandler
	Event   EventHandler
}

// RouterOptions carries the deployment settings the router needs.
type RouterOptions struct {
	AppEnv      string
	CORSOrigins []string
	LogLevel    slog.Level
}

func NewRouter(JWTService jwt.Service, opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.AppEnv != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-approval"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Get("/login/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
		})

		// Authenticated with the short-lived SSE token in the query string
		r.Get("/events/stream", h.Event.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(chiMiddleware.AllowContentType("application/json"))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Post("/events/token", h.Event.GetSSEToken)

			r.Route("/me", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/profile", h.Profile.GetProfile)
				r.With(middleware.RequirePermission(user.PermissionEditOwnProfile)).Put("/profile", h.Profile.UpdateProfile)
				r.Get("/views", h.Profile.GetViews)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/preview", h.Leave.Preview)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveCreate))
					r.Post("/", h.Leave.CreateRequest)
				})

				r.Route("/my", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewOwn))
					r.Get("/", h.Leave.GetMyRequests)
					r.Get("/recent", h.Leave.GetMyRecent)
					r.Get("/dashboard", h.Leave.GetMyDashboard)
					r.Get("/approved", h.Leave.GetMyApproved)
				})

				r.With(middleware.RequireAnyPermission(user.PermissionLeaveViewOwn, user.PermissionLeaveViewAll)).
					Get("/{ownerID}/{requestID}", h.Leave.GetRequest)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
				r.Get("/", h.Review.ListQueue)
				r.With(middleware.RequirePermission(user.PermissionLeaveTeacherDecide)).
					Post("/{ownerID}/{requestID}/teacher-decision", h.Review.TeacherDecision)
				r.With(middleware.RequirePermission(user.PermissionLeaveFinalDecide)).
					Post("/{ownerID}/{requestID}/final-decision", h.Review.FinalDecision)
			})
		})
	})
	return r
}
