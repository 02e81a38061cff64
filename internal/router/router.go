package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vidaplus/clinic-api/internal/handler"
	authHandler "github.com/vidaplus/clinic-api/internal/handler/auth"
	"github.com/vidaplus/clinic-api/internal/middleware"
	"github.com/vidaplus/clinic-api/internal/validation"
)

// Handler registers its routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	authH        *authHandler.Handler
	patientH     Handler
	doctorH      Handler
	appointmentH Handler
	h            *handler.Handler
	metrics      *routerMetrics
}

type routerMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	patientH Handler,
	doctorH Handler,
	appointmentH Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	validation.Register()

	engine := gin.New()
	metrics := initRouterMetrics()

	r := &Router{
		engine:       engine,
		auth:         auth,
		authH:        authH,
		patientH:     patientH,
		doctorH:      doctorH,
		appointmentH: appointmentH,
		h:            h,
		metrics:      metrics,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.CORS(config.CORSConfig),
	)

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	root.GET("/health", r.h.HealthCheck)
	root.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metrics.registry, promhttp.HandlerOpts{})))

	// Public routes
	r.authH.RegisterRoutes(root)
	r.patientH.RegisterRoutes(root)
	r.doctorH.RegisterRoutes(root)
	r.appointmentH.RegisterRoutes(root)

	// Protected routes
	protected := root.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics() *routerMetrics {
	registry := prometheus.NewRegistry()

	m := &routerMetrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "clinic_api_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinic_api_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinic_api_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
