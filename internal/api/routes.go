package api

import (
	"net/http"
	"time"

	"github.com/clonecoding/storefront/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	canonhttp "github.com/nhalm/canonlog/http"
	"github.com/nhalm/chikit/ratelimit"
	"github.com/nhalm/chikit/ratelimit/store"
	chikitvalidate "github.com/nhalm/chikit/validate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/clonecoding/storefront/docs" // Generated Swagger docs
)

// Limits are the per-IP request rates, the body cap and the CORS origins
// applied by the router.
type Limits struct {
	CatalogRPS     int
	SubmitRPS      int
	MaxBodyBytes   int64
	AllowedOrigins []string
}

var defaultLimits = Limits{
	CatalogRPS:     100,
	SubmitRPS:      20,
	MaxBodyBytes:   1 << 20,
	AllowedOrigins: []string{"http://localhost:5173"},
}

// LimitsFrom copies the router settings out of cfg. Zero values keep the
// defaults.
func LimitsFrom(cfg *config.Config) Limits {
	l := defaultLimits
	if cfg.ReadRPS > 0 {
		l.CatalogRPS = cfg.ReadRPS
	}
	if cfg.WriteRPS > 0 {
		l.SubmitRPS = cfg.WriteRPS
	}
	if cfg.MaxBodyBytes > 0 {
		l.MaxBodyBytes = cfg.MaxBodyBytes
	}
	if len(cfg.AllowedOrigins) > 0 {
		l.AllowedOrigins = cfg.AllowedOrigins
	}
	return l
}

// Routes builds the router with default limits.
func (h *Handler) Routes() http.Handler {
	return h.Router(defaultLimits)
}

func (h *Handler) Router(limits Limits) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(canonhttp.ChiMiddleware(nil))
	r.Use(chikitvalidate.MaxBodySize(limits.MaxBodyBytes))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.HTTPTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   limits.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	st := store.NewMemory()
	limiter := func(name string, rps int) func(http.Handler) http.Handler {
		return ratelimit.NewBuilder(st).
			WithName(name).
			WithIP().
			Limit(rps, time.Second)
	}
	browse := limiter("catalog", limits.CatalogRPS)
	submit := limiter("submit", limits.SubmitRPS)

	// The catalog paths sit at the root because existing clients call them there.
	r.With(browse).Get("/getProducts", h.GetProducts)
	r.With(browse).Get("/getUniqueBrands", h.GetUniqueBrands)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/news/{newsId}/comments", func(r chi.Router) {
			r.With(browse).Get("/", h.ListComments)
			r.With(submit).Post("/", h.CreateComment)
		})
		r.Route("/validate", func(r chi.Router) {
			r.Use(submit)
			r.Post("/card", h.ValidateCard)
			r.Post("/account", h.ValidateAccount)
		})
	})

	return r
}
