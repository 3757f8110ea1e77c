package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vprekovic/fitlog/internal/auth"
	"github.com/vprekovic/fitlog/internal/config"
	"github.com/vprekovic/fitlog/internal/db"
	"github.com/vprekovic/fitlog/internal/middleware"
	"github.com/vprekovic/fitlog/internal/misc"
	"github.com/vprekovic/fitlog/internal/nutrition"
	"github.com/vprekovic/fitlog/internal/progress"
	"github.com/vprekovic/fitlog/internal/telemetry/metrics"
	"github.com/vprekovic/fitlog/internal/telemetry/tracing"
	"github.com/vprekovic/fitlog/internal/tracker/goals"
	"github.com/vprekovic/fitlog/internal/tracker/intake"
	"github.com/vprekovic/fitlog/internal/tracker/lifts"
	"github.com/vprekovic/fitlog/internal/tracker/stats"
	"github.com/vprekovic/fitlog/internal/tracker/weighins"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used with the fitlog mobile app
	versionInfo       string

	config         *config.Config
	dbPool         *pgxpool.Pool
	nutritionApi   *nutrition.Api
	progressEngine *progress.Engine
	admin          *auth.Admin

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
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
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitlog", "backend", promRegistry)
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

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitlog-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,
		nutritionApi: nutrition.NewApi(
			params.Config.NutritionApiBaseURL,
			tracedHttpClient,
		),
		progressEngine: progress.NewEngine(),
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.admin)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	intakeRepo := intake.NewRepo(s.dbPool)
	intakeHandler := intake.NewHandler(intakeRepo, s.metricsManager)
	r.HandleFunc("/intake", intakeHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-intake-entry")
	r.HandleFunc("/intake", intakeHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-intake-entry")
	r.HandleFunc("/intake/list/page/{page}/size/{size}", intakeHandler.HandleList).Methods("GET", "OPTIONS").Name("list-intake-entries")
	r.HandleFunc("/intake/{id}", intakeHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-intake-entry")
	r.HandleFunc("/intake/{id}", intakeHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-intake-entry")

	weighInsHandler := weighins.NewHandler(
		weighins.NewService(weighins.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/weighins", weighInsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weighin")
	r.HandleFunc("/weighins", weighInsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weighins")
	r.HandleFunc("/weighins/latest", weighInsHandler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-weighin")
	r.HandleFunc("/weighins/{id}", weighInsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-weighin")
	r.HandleFunc("/weighins/{id}", weighInsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weighin")

	liftsHandler := lifts.NewHandler(lifts.NewRepo(s.dbPool), s.metricsManager)
	r.HandleFunc("/lifts", liftsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-lift")
	r.HandleFunc("/lifts", liftsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-lifts")
	r.HandleFunc("/lifts/pbs", liftsHandler.HandlePersonalBests).Methods("GET", "OPTIONS").Name("personal-bests")
	r.HandleFunc("/lifts/{id}", liftsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-lift")
	r.HandleFunc("/lifts/{id}", liftsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-lift")

	goalsRepo := goals.NewRepo(s.dbPool)
	goalsHandler := goals.NewHandler(goalsRepo, intakeRepo, s.progressEngine, s.metricsManager)
	r.HandleFunc("/goals", goalsHandler.HandleSetGoal).Methods("PUT", "OPTIONS").Name("set-goal")
	r.HandleFunc("/goals", goalsHandler.HandleListGoals).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/{id}", goalsHandler.HandleDeleteGoal).Methods("DELETE", "OPTIONS").Name("delete-goal")
	r.HandleFunc("/milestones", goalsHandler.HandleAddMilestone).Methods("POST", "OPTIONS").Name("new-milestone")
	r.HandleFunc("/milestones", goalsHandler.HandleListMilestones).Methods("GET", "OPTIONS").Name("list-milestones")
	r.HandleFunc("/milestones/{id}", goalsHandler.HandleDeleteMilestone).Methods("DELETE", "OPTIONS").Name("delete-milestone")
	r.HandleFunc("/milestones/{id}/progress", goalsHandler.HandleMilestoneProgress).Methods("GET", "OPTIONS").Name("milestone-progress")

	statsHandler := stats.NewHandler(
		stats.NewAnalyzer(intakeRepo, goalsRepo, s.progressEngine),
	)
	r.HandleFunc("/stats/daily/{quantity}", statsHandler.HandleDaily).Methods("GET", "OPTIONS").Name("stats-daily")
	r.HandleFunc("/stats/calendar/{quantity}/year/{year}/month/{month}", statsHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("stats-calendar")
	r.HandleFunc("/stats/streak/{quantity}", statsHandler.HandleStreak).Methods("GET", "OPTIONS").Name("stats-streak")

	nutritionHandler := nutrition.NewHandler(s.nutritionApi)
	r.HandleFunc("/nutrition/search", nutritionHandler.HandleSearch).Methods("GET", "OPTIONS").Name("nutrition-search")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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
