package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"admin-console-service/internal/core/port"
)

// Handlers - все обработчики консоли, собранные в одном месте.
type Handlers struct {
	Auth          *AuthHandlers
	Dashboard     *DashboardHandlers
	Properties    *PropertyHandlers
	PropertyForm  *PropertyFormHandlers
	Requirements  *RequirementHandlers
	Amenities     *AmenityHandlers
	Packages      *PackageHandlers
	Subscriptions *SubscriptionHandlers
	Customers     *CustomerHandlers
}

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer создает и настраивает главный роутер и HTTP-сервер.
func NewServer(restPort string, uiOrigin string, handlers *Handlers, session port.SessionStorePort, baseLogger port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Стандартные middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: []string{uiOrigin},

		// AllowedMethods - список разрешенных HTTP-методов.
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},

		// AllowedHeaders - список разрешенных заголовков в запросе
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},

		// AllowCredentials - разрешает отправку cookies и Authorization хедера
		AllowCredentials: true,

		// MaxAge - на сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300, // 5 минут
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Post("/auth/login", handlers.Auth.HandleLogin)

		// --- Приватные маршруты (для авторизованного администратора) ---
		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(session))

			r.Post("/auth/logout", handlers.Auth.HandleLogout)
			r.Get("/auth/session", handlers.Auth.HandleSession)

			r.Get("/dashboard", handlers.Dashboard.HandleGet)
			r.Post("/dashboard/refresh", handlers.Dashboard.HandleRefresh)

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", handlers.Properties.HandleList)
				r.Post("/next", handlers.Properties.HandleNext)
				r.Post("/previous", handlers.Properties.HandlePrevious)
				r.Get("/{id}", handlers.Properties.HandleDetails)
				r.Put("/{id}/status", handlers.Properties.HandleSetStatus)
				r.Post("/{id}/menu", handlers.Properties.HandleToggleMenu)
			})

			r.Route("/property-form", func(r chi.Router) {
				r.Post("/init", handlers.PropertyForm.HandleInit)
				r.Post("/category", handlers.PropertyForm.HandleSelectCategory)
				r.Post("/deal-type", handlers.PropertyForm.HandleSelectDealType)
				r.Get("/field-set", handlers.PropertyForm.HandleFieldSet)
				r.Put("/fields", handlers.PropertyForm.HandleSetFields)
				r.Post("/amenities/{id}/toggle", handlers.PropertyForm.HandleToggleAmenity)
				r.Get("/images", handlers.PropertyForm.HandleListImages)
				r.Post("/images", handlers.PropertyForm.HandleAddImages)
				r.Delete("/images/{index}", handlers.PropertyForm.HandleRemoveImage)
				r.Post("/load/{id}", handlers.PropertyForm.HandleLoadForEdit)
				r.Post("/submit", handlers.PropertyForm.HandleSubmit)
			})

			r.Route("/requirements", func(r chi.Router) {
				r.Get("/", handlers.Requirements.HandleList)
				r.Post("/next", handlers.Requirements.HandleNext)
				r.Post("/previous", handlers.Requirements.HandlePrevious)
				r.Put("/{id}/status", handlers.Requirements.HandleSetStatus)
				r.Post("/{id}/menu", handlers.Requirements.HandleToggleMenu)
			})

			r.Route("/requirement-form", func(r chi.Router) {
				r.Post("/load/{id}", handlers.Requirements.HandleFormLoad)
				r.Put("/fields", handlers.Requirements.HandleFormFields)
				r.Post("/blur", handlers.Requirements.HandleFormBlur)
				r.Post("/submit", handlers.Requirements.HandleFormSubmit)
			})

			r.Route("/amenities", func(r chi.Router) {
				r.Get("/", handlers.Amenities.HandleList)
				r.Post("/", handlers.Amenities.HandleAdd)
				r.Post("/next", handlers.Amenities.HandleNext)
				r.Post("/previous", handlers.Amenities.HandlePrevious)
			})

			r.Route("/packages", func(r chi.Router) {
				r.Get("/", handlers.Packages.HandleList)
				r.Post("/next", handlers.Packages.HandleNext)
				r.Post("/previous", handlers.Packages.HandlePrevious)
			})

			r.Route("/package-form", func(r chi.Router) {
				r.Post("/load/{id}", handlers.Packages.HandleFormLoad)
				r.Put("/fields", handlers.Packages.HandleFormFields)
				r.Post("/submit", handlers.Packages.HandleFormSubmit)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Get("/", handlers.Subscriptions.HandleList)
				r.Post("/next", handlers.Subscriptions.HandleNext)
				r.Post("/previous", handlers.Subscriptions.HandlePrevious)
				r.Post("/deactivate", handlers.Subscriptions.HandleDeactivate)
			})

			r.Route("/subscription-form", func(r chi.Router) {
				r.Put("/fields", handlers.Subscriptions.HandleFormFields)
				r.Post("/submit", handlers.Subscriptions.HandleFormSubmit)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", handlers.Customers.HandleList)
				r.Post("/next", handlers.Customers.HandleNext)
				r.Post("/previous", handlers.Customers.HandlePrevious)
			})
		})
	})

	srv := &http.Server{
		Addr:    ":" + restPort,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
