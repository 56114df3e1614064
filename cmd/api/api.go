package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportdesk/internal/backend"
	"sportdesk/internal/export"
	"sportdesk/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	backend     *backend.Client
	rateLimiter ratelimiter.Limiter
	now         func() time.Time
}

type config struct {
	addr        string
	env         string
	backendURL  string
	frontendURL string
	logFile     string
	auth        authConfig
	rateLimiter ratelimiter.Config
	export      exportConfig
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user     string
	passHash string // bcrypt
}

type exportConfig struct {
	money    export.Money
	location *time.Location
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := []string{"https://*", "http://*"}
	if app.config.frontendURL != "" {
		origins = []string{app.config.frontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Export-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(app.RateLimiterMiddleware)
			r.Use(app.SessionMiddleware)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/bookings", app.bookingsDashboardHandler)
				r.Get("/rentals", app.rentalsDashboardHandler)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", app.listBookingsHandler)
				r.Post("/", app.createBookingHandler)
				r.Get("/export", app.exportBookingsHandler)
				r.Get("/estimate", app.estimateBookingHandler)

				r.Route("/{bookingID}", func(r chi.Router) {
					r.Get("/", app.getBookingHandler)
					r.Put("/", app.updateBookingHandler)
					r.Delete("/", app.deleteBookingHandler)
					r.Patch("/status", app.updateBookingStatusHandler)
					r.Patch("/payment", app.updateBookingPaymentHandler)
				})
			})

			r.Route("/rentals", func(r chi.Router) {
				r.Get("/", app.listRentalsHandler)
				r.Post("/", app.createRentalHandler)
				r.Get("/export", app.exportRentalsHandler)
				r.Get("/estimate", app.estimateRentalHandler)

				r.Route("/{rentalID}", func(r chi.Router) {
					r.Get("/", app.getRentalHandler)
					r.Put("/", app.updateRentalHandler)
					r.Delete("/", app.deleteRentalHandler)
					r.Patch("/status", app.updateRentalStatusHandler)
					r.Patch("/payment", app.updateRentalPaymentHandler)
				})
			})

			r.Get("/reports/export", app.exportReportHandler)

			r.Get("/courts", app.listCourtsHandler)
			r.Get("/equipment", app.listEquipmentHandler)
			r.Get("/users", app.listUsersHandler)
			r.Get("/venues", app.listVenuesHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env, "backend", app.config.backendURL)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
