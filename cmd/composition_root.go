package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/notify"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/partnerrepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/adapters/out/rabbitmq"
	redisout "shipping/internal/adapters/out/redis"
	"shipping/internal/adapters/out/token"
	"shipping/internal/core/application/notifications"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// defaultReviewTokenMaxAge bounds review submission when no explicit
// REVIEW_TOKEN_MAX_AGE is configured.
const defaultReviewTokenMaxAge = 7 * 24 * time.Hour

// CompositionRoot wires every adapter and use case of the application.
// Construct it once at startup and tear it down with Close on shutdown.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	codeStore  *redisout.CodeStore
	tokenCodec *token.JWTCodec
	publisher  *rabbitmq.Publisher
	worker     *notify.Worker
	planner    *notifications.Planner

	reviewTokenMaxAge time.Duration
	logger            *slog.Logger
}

// NewCompositionRoot opens every outbound connection (postgres, redis,
// rabbitmq), migrates the schema and starts the notification worker.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.EventDTO{},
		&shipmentrepo.TagDTO{},
		&shipmentrepo.ReviewDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.LocationDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
	codeStore := redisout.NewCodeStore(redisClient, parseDuration(config.VerificationTTL, 0))

	publisher, err := rabbitmq.Dial(config.RabbitMQURL, config.RabbitMQQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	worker := notify.NewWorker(publisher, logger, notify.DefaultBufferSize)
	worker.Start()

	tokenCodec := token.NewJWTCodec(config.TokenSecret)
	planner := notifications.NewPlanner(codeStore, tokenCodec, worker, config.AppDomain)

	return &CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		codeStore:         codeStore,
		tokenCodec:        tokenCodec,
		publisher:         publisher,
		worker:            worker,
		planner:           planner,
		reviewTokenMaxAge: parseDuration(config.ReviewTokenMaxAge, defaultReviewTokenMaxAge),
		logger:            logger,
	}, nil
}

// Close drains the notification worker and releases the rabbitmq connection.
func (c *CompositionRoot) Close() {
	c.worker.Stop()
	if err := c.publisher.Close(); err != nil {
		c.logger.Warn("failed to close rabbitmq publisher", "error", err)
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.planner, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f, c.codeStore, c.planner, c.logger)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f, c.planner, c.logger)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAddShipmentTagCommandHandler() commands.AddShipmentTagCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddShipmentTagCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveShipmentTagCommandHandler() commands.RemoveShipmentTagCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveShipmentTagCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f, c.tokenCodec, c.reviewTokenMaxAge)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueShipmentsQueryHandler() queries.GetOverdueShipmentsQueryHandler {
	return queries.NewGetOverdueShipmentsQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over all command and query handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentCommandHandler(),
		c.CreateCancelShipmentCommandHandler(),
		c.CreateDeleteShipmentCommandHandler(),
		c.CreateAddShipmentTagCommandHandler(),
		c.CreateRemoveShipmentTagCommandHandler(),
		c.CreateSubmitReviewCommandHandler(),
		c.CreateCreatePartnerCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueShipmentsQueryHandler(), c.logger)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
