package di

import (
	"fmt"

	"FinTab/internal/domain/repository"
	internalrepo "FinTab/internal/repository"
	"FinTab/internal/service/source"
	"FinTab/internal/usecase"
	"FinTab/pkg/cache"
	"FinTab/pkg/config"
	pkghttp "FinTab/pkg/http"
	pkgkafka "FinTab/pkg/kafka"
	applogger "FinTab/pkg/logger"
	"FinTab/pkg/metrics"
	"FinTab/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	log, err := applogger.New(&applogger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideLineSource selects a file or HTTP source from the input path.
func ProvideLineSource(cfg *config.Config) repository.LineSource {
	var client *pkghttp.Client
	if cfg.Input.FetchTimeout > 0 {
		client = pkghttp.NewClient(pkghttp.WithTimeout(cfg.Input.FetchTimeout))
	}
	return source.ForPath(cfg.Input.Path, client)
}

// ProvideTableLoader creates the ingestion use case.
func ProvideTableLoader(m repository.Metrics, log *applogger.Logger) *usecase.TableLoader {
	return usecase.NewTableLoader(m, log)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when publishing
// is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Publisher.Type != "kafka" {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher creates the Kafka publisher repository, or nil when
// publishing is disabled.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Publisher.Topic)
}

// ProvideLogPublisher adapts the producer for log collection. The nil
// check happens on the concrete type so a disabled producer yields a nil
// interface, not an interface holding a nil pointer.
func ProvideLogPublisher(producer *pkgkafka.Producer) applogger.Publisher {
	if producer == nil {
		return nil
	}
	return producer
}

// ProvideCache creates the cache backend named by the configuration.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "", "memory":
		return cache.NewMemoryCache(
			cache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize),
		), nil
	case "redis":
		c, err := cache.NewRedisCache(redisOptions(cfg)...)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	case "layered":
		rc, err := cache.NewRedisCache(redisOptions(cfg)...)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(rc,
			cache.WithLayeredMemorySize(cfg.Cache.Memory.MaxSize),
		), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func redisOptions(cfg *config.Config) []cache.RedisOption {
	return []cache.RedisOption{
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	}
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	src repository.LineSource,
	loader *usecase.TableLoader,
	m repository.Metrics,
	publisher repository.Publisher,
	logPublisher applogger.Publisher,
	cacheSvc cache.Service,
) *server.App {
	return server.New(cfg, log, src, loader, m, publisher, logPublisher, cacheSvc)
}
