package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-registry-api/config"
	"user-registry-api/internal/application/ports"
	"user-registry-api/internal/application/services"
	"user-registry-api/internal/application/validation"
	"user-registry-api/internal/infrastructure/db/postgres"
	"user-registry-api/internal/infrastructure/db/postgres/user"
	"user-registry-api/internal/infrastructure/jwt"
	"user-registry-api/internal/infrastructure/metrics"
	"user-registry-api/internal/infrastructure/mq"
	"user-registry-api/internal/interface/api/rest"
	"user-registry-api/internal/interface/api/rest/middleware"
	"user-registry-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     ports.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.EventConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("cannot initialize zap logger: %w", err)
	}

	// config
	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	// metrics
	mCounter := metrics.NewCounter(prometheus.DefaultRegisterer)

	// router
	gin.SetMode(ginMode(cfg.App.Env))
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(ctx, logger, dbPool); err != nil {
		dbPool.Close()
		return nil, err
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		events:   mq.Discard{},
	}

	if !cfg.MQEnabled() {
		logger.Warn("RABBITMQ_HOST is not set, user events are discarded")
		return app, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger, mCounter)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	app.mq = rbMQ
	app.events = rbMQ
	if err = rbMQ.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}
	app.mqConsumer = rmqConsumer

	return app, nil
}

func ginMode(env string) string {
	switch env {
	case gin.ReleaseMode, "prod", "production":
		return gin.ReleaseMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	// the publisher outlives the http server so events of drained requests are flushed
	pubCtx, pubCancel := context.WithCancel(context.Background())
	defer pubCancel()
	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(pubCtx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	shutdownErr := a.httpSrv.Shutdown(shutdownCtx)
	pubCancel()
	if shutdownErr != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(shutdownErr))
		return shutdownErr
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)

	// services
	var jwtService *jwt.Service
	if a.cfg.AuthEnabled() {
		jwtService = jwt.New(a.cfg.App.JWTSecret, a.cfg.App.Name)
	} else {
		a.logger.Warn("SERVICE_JWT_SECRET is not set, mutating user routes are open")
	}
	userValidator := validation.NewUserValidator(validation.NewBirthDateValidator(a.cfg.User.MinAge))
	userService := services.NewUserService(userRepo, userValidator, a.events, a.mCounter)

	// controllers
	rest.NewUserController(a.router, userService, a.logger, jwtService)
	initOps(a.router, promhttp.Handler())
}

func initOps(r *gin.Engine, metricsHandler http.Handler) {
	r.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET(rest.RouteMetrics, gin.WrapH(metricsHandler))
}

func (a *App) Logger() *zap.Logger { return a.logger }
