package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
)

type Options struct {
	Products *handlers.ProductHandler
	Logger   zerolog.Logger
	// Limiter throttles the products API per client; nil disables it.
	Limiter rl.Limiter
	// TrustProxy derives the client address from X-Forwarded-For / X-Real-IP.
	// Off, the peer address is used and those headers are ignored.
	TrustProxy bool
}

func NewRouter(opts Options) http.Handler {
	faults := mw.NewFaultTranslator(opts.Logger)
	h := opts.Products

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestLogger(opts.Logger))
	r.Use(faults.Recover)

	r.Get("/healthz", faults.Handle(h.Health))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route(handlers.BasePath, func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter, opts.Logger))
		}

		r.Get("/", faults.Handle(h.List))
		r.Post("/", faults.Handle(h.Create))
		r.Get("/summary", faults.Handle(h.Summary))
		r.Post("/import", faults.Handle(h.Import))
		// legacy form: GET /api/products/id?id=N
		r.Get("/id", faults.Handle(h.Get))
		r.Get("/{id}", faults.Handle(h.Get))
		r.Put("/{id}", faults.Handle(h.Update))
		r.Delete("/{id}", faults.Handle(h.Delete))
	})

	return r
}
