package cmd

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "havenpos/internal/adapters/in/http"
	"havenpos/internal/adapters/out/events"
	"havenpos/internal/adapters/out/memory"
	"havenpos/internal/adapters/out/postgres"
	"havenpos/internal/core/application/usecases"
	"havenpos/internal/core/domain/services"
	"havenpos/internal/core/ports"
	"havenpos/internal/jobs"

	"github.com/shopspring/decimal"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultTaxRate = "0.10"

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	kafka      *events.KafkaPublisher
	handlers   *usecases.Handlers
}

// NewCompositionRoot connects storage and the event publisher and builds
// the use case handlers.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{cfg: cfg, logger: logger}

	taxRate, err := decimal.NewFromString(cmp.Or(cfg.TaxRate, defaultTaxRate))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE %q: %w", cfg.TaxRate, err)
	}
	pricer, err := services.NewPricer(taxRate)
	if err != nil {
		return nil, err
	}

	if cfg.UsesPostgres() {
		root.gormDB, err = gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err = postgres.Migrate(root.gormDB); err != nil {
			_ = root.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(root.gormDB)
		logger.Info("using postgres storage", "host", cfg.DBHost, "database", cfg.DBName)
	} else {
		root.uowFactory = memory.NewStore().Factory()
		logger.Warn("DB_HOST not set, orders are kept in memory")
	}

	var publisher ports.OrderEventPublisher
	if cfg.UsesKafka() {
		root.kafka, err = events.NewKafkaPublisher(cfg.KafkaHost, cfg.KafkaOrderChangedTopic)
		if err != nil {
			_ = root.Close()
			return nil, err
		}
		publisher = root.kafka
	} else {
		publisher = events.NewLogPublisher(logger)
	}

	root.handlers = usecases.NewHandlers(root.uowFactory, pricer, publisher, utcNow, logger)
	return root, nil
}

func (c *CompositionRoot) Handlers() *usecases.Handlers {
	return c.handlers
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	tokens, err := httpin.NewTokens(c.cfg.JWTSecret, nil)
	if err != nil {
		return nil, err
	}
	return httpin.NewServer(c.handlers, tokens, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.handlers.ListOverdueOrders, c.cfg.OverdueCheckSpec, c.logger)
}

// Close releases the broker writer and the database pool.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.kafka != nil {
		errList = append(errList, c.kafka.Close())
	}
	if c.gormDB != nil {
		if sqlDB, err := c.gormDB.DB(); err == nil {
			errList = append(errList, sqlDB.Close())
		}
	}
	return errors.Join(errList...)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
