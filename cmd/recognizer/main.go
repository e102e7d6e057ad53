package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/totegamma/recognizer/ethereum"
	"github.com/totegamma/recognizer/internal/config"
	"github.com/totegamma/recognizer/internal/infra/cache"
	"github.com/totegamma/recognizer/internal/infra/database"
	"github.com/totegamma/recognizer/internal/infra/metrics"
	"github.com/totegamma/recognizer/internal/infra/repository"
	"github.com/totegamma/recognizer/internal/infra/tracing"
	"github.com/totegamma/recognizer/internal/interface/rest"
	"github.com/totegamma/recognizer/internal/interface/rest/middleware"
	"github.com/totegamma/recognizer/internal/service"
	"github.com/totegamma/recognizer/internal/usecase"
	"github.com/totegamma/recognizer/krssn"
)

const (
	serviceName = "recognizer"
	version     = "0.1.0"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.NewEntry(logger).WithField("service", serviceName)

	conf, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	level, err := logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.Server.EnableTrace {
		shutdown, err := tracing.Setup(ctx, serviceName, version, conf.Server.TraceEndpoint)
		if err != nil {
			log.WithError(err).Fatal("failed to set up tracing")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Warn("failed to shut down tracer provider")
			}
		}()
	}

	ethOpts := []ethereum.Option{}
	if conf.Validator.StrictChecksum {
		ethOpts = append(ethOpts, ethereum.WithStrictChecksum())
	}
	ssnOpts := []krssn.Option{}
	if len(conf.Validator.SampleNumbers) > 0 {
		ssnOpts = append(ssnOpts, krssn.WithSampleNumbers(conf.Validator.SampleNumbers...))
	}

	registry := usecase.NewRegistry(
		usecase.Recognizer{Definition: ethereum.DefaultDefinition(), Validator: ethereum.NewValidator(ethOpts...)},
		usecase.Recognizer{Definition: krssn.DefaultDefinition(), Validator: krssn.NewValidator(ssnOpts...)},
	)

	ttl := conf.Validator.CacheTTLDuration
	namespace := "relaxed"
	if conf.Validator.StrictChecksum {
		namespace = "strict"
	}
	if len(conf.Validator.SampleNumbers) > 0 {
		namespace += "-custom"
	}

	var verdictCache usecase.VerdictCache
	if ttl > 0 {
		if conf.Server.MemcachedAddr != "" {
			verdictCache = cache.NewVerdictCache(database.NewMemcached(conf.Server.MemcachedAddr), ttl, namespace)
		} else {
			verdictCache = cache.NewVerdictCache(nil, ttl, namespace)
		}
	}

	var stats usecase.StatRepository
	if conf.Server.PostgresDsn != "" {
		db, err := database.NewPostgres(conf.Server.PostgresDsn, log)
		if err != nil {
			log.WithError(err).Fatal("failed to connect database")
		}
		if err := database.MigratePostgres(db); err != nil {
			log.WithError(err).Fatal("failed to migrate database")
		}
		stats = repository.NewStatRepository(db)
	}

	var publisher usecase.VerdictPublisher
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
		defer rdb.Close()
		publisher = service.NewSignalService(rdb, conf.Server.VerdictChannel)
	}

	m := metrics.New()
	validate := usecase.NewValidateUsecase(registry, verdictCache, stats, publisher, m, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware(serviceName))
	}
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.Recover())

	rest.NewHandler(validate).RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	go func() {
		log.WithField("listen", conf.Server.Listen).Info("starting server")
		if err := e.Start(conf.Server.Listen); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("failed to shut down server")
	}
}
