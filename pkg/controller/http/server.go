package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lensworks/crewdesk/pkg/usecase"
	"github.com/lensworks/crewdesk/pkg/utils/logging"
)

type Server struct {
	router        *chi.Mux
	uc            *usecase.UseCases
	authUC        AuthUseCase
	roleRoutes    []RoleRoute
	secureCookies bool
}

type Options func(*Server)

// WithSecureCookies marks session cookies as secure regardless of TLS on
// the listener, for deployments behind a TLS-terminating proxy.
func WithSecureCookies(enabled bool) Options {
	return func(s *Server) {
		s.secureCookies = enabled
	}
}

// WithRoleRoutes replaces the built-in prefix→role table.
func WithRoleRoutes(routes []RoleRoute) Options {
	return func(s *Server) {
		s.roleRoutes = routes
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:     r,
		uc:         uc,
		authUC:     uc.Auth,
		roleRoutes: DefaultRoleRoutes(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(authMiddleware(s.authUC, s.roleRoutes))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/me", s.handleMe)
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Get("/{id}", s.handleGetTask)
		r.Patch("/{id}", s.handlePatchTask)
		r.Delete("/{id}", s.handleDeleteTask)
	})

	r.Route("/api/leads", func(r chi.Router) {
		r.Get("/", s.handleListLeads)
		r.Post("/", s.handleCreateLead)
		r.Patch("/{id}/status", s.handleUpdateLeadStatus)
	})

	r.Route("/api/shoots", func(r chi.Router) {
		r.Get("/", s.handleListShoots)
		r.Post("/", s.handleCreateShoot)
		r.Post("/{id}/assignments", s.handleAssignShoot)
	})

	r.Route("/api/invoices", func(r chi.Router) {
		r.Get("/", s.handleListInvoices)
		r.Post("/", s.handleCreateInvoice)
		r.Post("/{id}/pay", s.handlePayInvoice)
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Get("/", s.handleListNotifications)
		r.Post("/read-all", s.handleMarkAllNotificationsRead)
		r.Post("/{id}/read", s.handleMarkNotificationRead)
	})

	r.Get("/api/analytics/insights", s.handleInsights)

	r.Route("/api/content-studio", func(r chi.Router) {
		r.Post("/generate", s.handleGenerateScript)
		r.Get("/scripts/{id}", s.handleGetScript)
		r.Get("/scripts/{id}/versions", s.handleListScriptVersions)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger logs every HTTP request with the wrapped response status
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
