package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/rewards-server/internal/api/grpc/context"
	"github.com/dtroode/rewards-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/rewards-server/internal/api/grpc/server"
	httpapi "github.com/dtroode/rewards-server/internal/api/http"
	"github.com/dtroode/rewards-server/internal/broker/rabbitmq"
	"github.com/dtroode/rewards-server/internal/config"
	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
	"github.com/dtroode/rewards-server/internal/ratelimit/redis"
	"github.com/dtroode/rewards-server/internal/repository/memory"
	"github.com/dtroode/rewards-server/internal/repository/postgres"
	"github.com/dtroode/rewards-server/internal/scheduler"
	"github.com/dtroode/rewards-server/internal/server"
	"github.com/dtroode/rewards-server/internal/service"
	storage "github.com/dtroode/rewards-server/internal/storage/minio"
	"github.com/dtroode/rewards-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores groups what the services need from the persistence layer.
type stores struct {
	consents   model.ConsentStore
	anonymized model.AnonymizedStore
	transactor model.Transactor
	pinger     model.Pinger
	close      func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.Log.Level, cfg.Log.Format)
	logAppVersion(logger)

	st, err := openStores(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer st.close()

	publisher, closePublisher := newPublisher(cfg.AMQP, logger)
	defer closePublisher()

	limiter, closeLimiter := newLimiter(cfg.RateLimit, logger)
	defer closeLimiter()

	consentService := service.NewConsent(st.consents, st.transactor, publisher, logger)
	submissionService := service.NewSubmission(st.transactor, limiter, logger, cfg.Rewards.PointsPerSubmission)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	ctxMgr := grpcctx.NewManager()

	exportScheduler := newScheduler(ctx, cfg, st.anonymized, logger)

	r := router.New(consentService, submissionService, tokenManager, ctxMgr, logger)
	gs := r.Register()

	servers := []model.Server{grpcServer.NewGRPCServer(gs, fmt.Sprintf(":%s", cfg.GRPC.Port))}
	if cfg.HTTP.Port != "" {
		probes := httpapi.NewRouter(st.pinger, logger)
		servers = append(servers, httpapi.NewServer(probes.Handler(), fmt.Sprintf(":%s", cfg.HTTP.Port)))
	}

	grpcSecurity := server.NewSecurityLayer(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	securityFor := func(i int) model.SecurityLayer {
		if i == 0 {
			return grpcSecurity
		}
		return server.NewPlainListener()
	}

	var wg sync.WaitGroup
	for i, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("starting server", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s, securityFor(i))
	}
	r.SetServing(true)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	r.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if exportScheduler != nil {
		if err := exportScheduler.Stop(shutdownCtx); err != nil {
			logger.Error("export job did not finish before shutdown", "error", err)
		}
	}
	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg config.Database, logger *logger.Logger) (*stores, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		s := memory.NewStore()
		return &stores{
			consents:   s.Consents(),
			anonymized: s.Anonymized(),
			transactor: s,
			pinger:     s,
			close:      func() error { return nil },
		}, nil
	}

	db, err := postgres.NewConnection(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, err
	}
	return &stores{
		consents:   postgres.NewConsentRepository(db),
		anonymized: postgres.NewAnonymizedRepository(db),
		transactor: postgres.NewTransactor(db, logger),
		pinger:     db,
		close:      db.Close,
	}, nil
}

// newPublisher falls back to dropping events when the broker is absent or unreachable.
func newPublisher(cfg config.AMQP, logger *logger.Logger) (model.EventPublisher, func()) {
	if cfg.URL == "" {
		return rabbitmq.NewFallback(logger), func() {}
	}

	producer, err := rabbitmq.NewProducer(cfg.URL, cfg.Exchange, logger)
	if err != nil {
		logger.Warn("event broker unavailable, consent events will be dropped", "error", err)
		return rabbitmq.NewFallback(logger), func() {}
	}
	return producer, func() {
		if err := producer.Close(); err != nil {
			logger.Warn("failed to close event broker", "error", err)
		}
	}
}

func newLimiter(cfg config.RateLimit, logger *logger.Logger) (model.RateLimiter, func()) {
	if cfg.RedisURL == "" || cfg.PerMinute == 0 {
		return nil, func() {}
	}

	client, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		logger.Warn("rate limiting disabled", "error", err)
		return nil, func() {}
	}
	return redis.NewLimiter(client, "", cfg.PerMinute, time.Minute), func() { _ = client.Close() }
}

func newScheduler(ctx context.Context, cfg *config.Config, anonymized model.AnonymizedStore, logger *logger.Logger) *scheduler.Scheduler {
	if !cfg.Export.Enabled {
		return nil
	}

	objects, err := storage.Connect(ctx, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize export storage", "error", err, "endpoint", cfg.Storage.Endpoint)
	}

	exportService := service.NewExport(anonymized, objects, logger, cfg.Export.MinGroupSize)
	s := scheduler.New(exportService, logger, cfg.Export.Schedule, cfg.Export.Timeout)
	if err := s.Start(); err != nil {
		logger.Fatal("failed to start export scheduler", "error", err, "schedule", cfg.Export.Schedule)
	}
	return s
}

func logAppVersion(logger *logger.Logger) {
	logger.Info("starting rewards server", "version", buildVersion, "date", buildDate, "commit", buildCommit)
}
