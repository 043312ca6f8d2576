package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/legday/internal/auth"
	"github.com/2beens/legday/internal/catalog"
	"github.com/2beens/legday/internal/config"
	"github.com/2beens/legday/internal/days"
	"github.com/2beens/legday/internal/db"
	"github.com/2beens/legday/internal/middleware"
	"github.com/2beens/legday/internal/preferences"
	"github.com/2beens/legday/internal/selection"
	"github.com/2beens/legday/internal/telemetry/metrics"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/units"
	"github.com/2beens/legday/internal/workouts"
	"github.com/2beens/legday/pkg"
)

const (
	routerName      = "main-router"
	shutdownTimeout = 15 * time.Second
	healthTimeout   = 2 * time.Second
)

type healthCheck func(ctx context.Context) error

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	sessionReader auth.Reader
	rateLimiter   middleware.RequestRateLimiter
	healthChecks  map[string]healthCheck

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBUser:         params.Config.PostgresUser,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.MigrateOnStart {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate on start: %w", err)
		}
		log.Debugln("db schema migrated")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "legday", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "legday-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		sessionReader: auth.NewSessionReader(auth.DefaultTTL, rdb),
		rateLimiter:   redis_rate.NewLimiter(rdb),
		healthChecks: map[string]healthCheck{
			"postgres": dbPool.Ping,
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	defaultMetric, err := units.ParseMetric(s.config.DefaultMetric)
	if err != nil {
		return nil, fmt.Errorf("default metric: %w", err)
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware(routerName))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	catalogRepo := catalog.NewRepo(s.dbPool)
	catalogSource := catalog.NewCachedSource(
		catalogRepo,
		s.config.CatalogCacheSizeMB,
		time.Duration(s.config.CatalogCacheTTLSeconds)*time.Second,
		s.metricsManager,
	)
	prefsStore := preferences.NewStore(s.redisClient, defaultMetric)
	selectionOpts := selection.Options{
		IncludeUnscopedExercises: s.config.IncludeUnscopedExercises,
	}

	catalog.NewHandler(catalogSource, s.config.ProgramID).SetupRoutes(r)
	selection.NewHandler(catalogSource, prefsStore, selection.NewEngine(selectionOpts)).SetupRoutes(r)
	units.NewHandler().SetupRoutes(r)
	preferences.NewHandler(prefsStore).SetupRoutes(r)

	daysRepo := days.NewRepo(s.dbPool)
	days.NewHandler(
		days.NewResolver(daysRepo, catalogRepo, s.metricsManager),
		daysRepo,
		prefsStore,
	).SetupRoutes(r)

	workouts.NewHandler(
		workouts.NewService(
			workouts.NewRepo(s.dbPool),
			daysRepo,
			catalogSource,
			prefsStore,
			selectionOpts,
			s.metricsManager,
		),
	).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionReader)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RateLimitWrites(s.rateLimiter, s.metricsManager, routerName, s.config.WritesAllowedPerMin))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "dev"
	}
	pkg.WriteTextResponseOK(w, "legday "+version)
}

// handleHealth runs every dependency check, 503 lists the failing ones.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	var failing []string
	for name, check := range s.healthChecks {
		if err := check(ctx); err != nil {
			log.Errorf("health check [%s]: %s", name, err)
			failing = append(failing, name)
		}
	}

	if len(failing) > 0 {
		sort.Strings(failing)
		http.Error(w, "unhealthy: "+strings.Join(failing, ", "), http.StatusServiceUnavailable)
		return
	}
	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
