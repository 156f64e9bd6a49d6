package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-service/internal/cfg"
	v1Grpc "github.com/DRSN-tech/catalog-service/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/catalog-service/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-service/internal/infrastructure/kafka"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/closer"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/DRSN-tech/catalog-service/pkg/postgres"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout     = 30 * time.Second
	kafkaTopicTimeout  = 10 * time.Second
	forcedCloseTimeout = 3 * time.Second
)

// App собирает зависимости и управляет жизненным циклом серверов.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	db      *postgres.PgDatabase
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedCloseTimeout),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := a.init(ctx); err != nil {
		a.shutdown()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init(ctx context.Context) error {
	db, err := a.initPGDB(ctx)
	if err != nil {
		return err
	}
	a.db = db

	cacheRepo, err := a.initCache(ctx)
	if err != nil {
		return err
	}

	publisher := a.initPublisher()

	productUC := usecase.NewProductUC(
		pgdb.NewProductRepo(db.Pool),
		pgdb.NewCategoryRepo(db.Pool),
		pgdb.NewManufacturerRepo(db.Pool),
		tr.NewManager(db.Pool),
		cacheRepo,
		publisher,
		a.logger,
	)
	customerUC := usecase.NewCustomerUC(pgdb.NewCustomerRepo(db.Pool), a.logger)
	reviewUC := usecase.NewReviewUC(pgdb.NewReviewRepo(db.Pool))

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(v1Http.Handlers{
		Products:  productUC,
		Customers: customerUC,
		Reviews:   reviewUC,
		DB:        db,
	})
	a.httpSrv = v1Http.NewServer(r, a.cfg.Http, a.logger)
	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)

	return nil
}

func (a *App) initPGDB(ctx context.Context) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, a.cfg.Db, a.logger)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", func(context.Context) error {
		db.Close()
		return nil
	})

	if err := db.RunMigrations(a.logger); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// initCache подключает Redis либо возвращает пустой кэш, если он выключен.
func (a *App) initCache(ctx context.Context) (usecase.CacheRepository, error) {
	if !a.cfg.Redis.Enabled {
		a.logger.Infof("Redis cache disabled")
		return redis.NewNopCacheRepo(), nil
	}

	client := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", client.Close)

	if err := client.Ping(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return redis.NewCacheRepo(client, a.cfg.Redis, a.logger), nil
}

// initPublisher создаёт продюсер Kafka. Без брокеров события не публикуются.
func (a *App) initPublisher() usecase.ProductEventPublisher {
	if len(a.cfg.Kafka.Brokers) == 0 {
		a.logger.Infof("Kafka brokers not configured, product events disabled")
		return kafka.NopPublisher{}
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(kafkaTopicTimeout); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}
	a.closer.Add("kafka producer", producer.Close)

	return producer
}

// Run запускает серверы и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	watchCtx, stopWatch := context.WithCancel(context.Background())
	go a.grpcSrv.WatchDatabase(watchCtx, a.db)
	a.closer.Add("db health watcher", func(context.Context) error {
		stopWatch()
		return nil
	})

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	httpErrCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.Run(); err != nil {
			httpErrCh <- err
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-httpErrCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.shutdown()
	a.logger.Infof("Application shutdown complete")

	return appErr
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Http.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}
}
