// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, authorization, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/config"
	"github.com/hydromech/dredger-journal/internal/http/handlers"
	"github.com/hydromech/dredger-journal/internal/http/middleware"
	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), idempotency and rate
// limiting, CORS and security headers, health and metrics endpoints, and then
// mounts the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Identity: stash forwarded actor headers for logging/limiting/audit
//  4. RedactingLogger: structured logs with PII scrubbing
//  5. Recovery: capture panics after logger
//  6. Body size limiter
//  7. Metrics
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per actor/IP, bypass on replay)
//  10. CORS, security headers, gzip
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Actor identity from forwarded headers
	r.Use(middleware.Identity())

	// 4) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key", // project-specific sensitive header example
		},
	}))

	// 5) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 6) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, actorID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, actorID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per actor/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	allowHeaders := []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		middleware.HeaderUserID, middleware.HeaderUserRole, middleware.HeaderIdempotencyKey,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Response compression (exports and list endpoints benefit most)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	// Dependency injection: services ← db
	captionLocale, err := language.Parse(cfg.ReportLocale)
	if err != nil {
		captionLocale = language.English
	}
	catalogSvc := &services.CatalogService{DB: db}
	fleetSvc := &services.FleetService{DB: db}
	componentSvc := &services.ComponentService{DB: db}
	repairSvc := &services.RepairService{DB: db}
	deviationSvc := &services.DeviationService{DB: db}
	reportSvc := &services.ReportService{DB: db, CaptionLocale: captionLocale}

	h := handlers.New(catalogSvc, fleetSvc, componentSvc, repairSvc, deviationSvc, reportSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Catalog (reads open, writes gated)
		api.GET("/dredger-types", h.ListDredgerTypes)
		api.GET("/dredger-types/:id/parts", h.ListTypeParts)
		api.GET("/spare-parts", h.ListSpareParts)
		api.GET("/spare-parts/:id", h.GetSparePart)

		refdata := api.Group("", middleware.RequireCapability(middleware.CapRefDataWrite))
		refdata.POST("/dredger-types", h.CreateDredgerType)
		refdata.POST("/dredger-types/:id/parts", h.AddTypePart)
		refdata.DELETE("/dredger-types/:id/parts/:partID", h.RemoveTypePart)
		refdata.POST("/spare-parts", h.CreateSparePart)
		refdata.PUT("/spare-parts/:id", h.UpdateSparePart)

		// Fleet
		api.GET("/dredgers", h.ListDredgers)
		api.GET("/dredgers/:id", h.GetDredger)
		api.GET("/dredgers/:id/components", h.ListDredgerComponents)
		api.GET("/dredgers/:id/template", h.GetDredgerTemplate)

		fleet := api.Group("", middleware.RequireCapability(middleware.CapFleetWrite))
		fleet.POST("/dredgers", h.CreateDredger)
		fleet.PUT("/dredgers/:id", h.UpdateDredger)

		// Components
		api.GET("/components", h.ListComponents)
		api.GET("/components/available", h.ListAvailableComponents)
		api.GET("/components/:id", h.GetComponent)
		api.GET("/components/:id/history", h.GetComponentHistory)

		comps := api.Group("", middleware.RequireCapability(middleware.CapComponentWrite))
		comps.POST("/components", h.CreateComponent)
		comps.PATCH("/components/:id/hours", h.UpdateComponentHours)

		// Repairs
		api.GET("/repairs", h.ListRepairs)
		api.GET("/repairs/:id", h.GetRepair)

		repairs := api.Group("", middleware.RequireCapability(middleware.CapRepairWrite))
		repairs.POST("/repairs", h.CreateRepair)
		repairs.PUT("/repairs/:id", h.UpdateRepair)
		repairs.DELETE("/repairs/:id", h.DeleteRepair)

		// Deviations
		api.GET("/deviations", h.ListDeviations)
		api.GET("/deviations/:id", h.GetDeviation)

		devs := api.Group("", middleware.RequireCapability(middleware.CapDeviationWrite))
		devs.POST("/deviations", h.CreateDeviation)

		// Reports
		api.GET("/reports/dashboard", h.GetDashboard)
		api.GET("/reports/repairs/export", h.ExportRepairs)
		api.GET("/reports/deviations/export", h.ExportDeviations)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
