package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eda/api"
	httpadapter "eda/internal/adapters/in/http"
	"eda/internal/adapters/out/events"
	"eda/internal/adapters/out/postgres"
	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/application/usecases/queries"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/services"
	"eda/internal/core/ports"
	"eda/internal/jobs"

	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.FixedZoneClock
	publisher  ports.OrderEventPublisher
	checks     []healthgo.Config
	closers    []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	clock, err := kernel.NewFixedZoneClock(cfg.Watchdog.UTCOffsetMinutes)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
	}
	c.checks = append(c.checks, healthgo.Config{
		Name:    "database",
		Timeout: 2 * time.Second,
		Check: func(ctx context.Context) error {
			sqlDB, dbErr := gormDB.DB()
			if dbErr != nil {
				return dbErr
			}
			return sqlDB.PingContext(ctx)
		},
	})

	if err = c.setupPublisher(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) setupPublisher() error {
	switch c.cfg.Events.Driver {
	case "nats":
		conn, err := events.ConnectNATS(c.cfg.Events.NATS.URL, c.cfg.App.Name)
		if err != nil {
			return err
		}
		c.publisher = events.NewNATSPublisher(conn, c.cfg.Events.NATS.Subject)
		c.closers = append(c.closers, conn.Drain)
		c.checks = append(c.checks, healthgo.Config{
			Name: "nats",
			Check: func(context.Context) error {
				if !conn.IsConnected() {
					return errors.New("NATS connection is not active")
				}
				return nil
			},
		})
	case "amqp":
		conn, err := events.DialAMQP(c.cfg.Events.AMQP.URL, c.cfg.Events.AMQP.Exchange)
		if err != nil {
			return err
		}
		c.publisher = events.NewAMQPPublisher(conn.Channel(), c.cfg.Events.AMQP.Exchange, c.cfg.Events.AMQP.RoutingKey)
		c.closers = append(c.closers, conn.Close)
		c.checks = append(c.checks, healthgo.Config{
			Name: "amqp",
			Check: func(context.Context) error {
				if conn.IsClosed() {
					return errors.New("AMQP connection is closed")
				}
				return nil
			},
		})
	default:
		c.publisher = events.NewLogPublisher(c.logger)
	}
	return nil
}

// Close releases broker connections.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) Clock() kernel.FixedZoneClock {
	return c.clock
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateOrderStatusCommandHandler() commands.OrderStatusCommandHandler {
	return commands.NewOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeliverDueOrdersCommandHandler() commands.DeliverDueOrdersCommandHandler {
	dispatcher := services.NewDeliveryDispatcher(c.cfg.Watchdog.MinDeliveryWindow())
	return commands.NewDeliverDueOrdersCommandHandler(c.orderUoWFactory(), c.clock, dispatcher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	return commands.NewCreateReviewCommandHandler(FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	}), c.clock)
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	return commands.NewDeleteReviewCommandHandler(FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateCreateAppReviewCommandHandler() commands.CreateAppReviewCommandHandler {
	return commands.NewCreateAppReviewCommandHandler(FuncAppReviewUoWFactory(func() commands.AppReviewUoW {
		return c.uowFactory.Create()
	}), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetReviewByOrderQueryHandler() queries.GetReviewByOrderQueryHandler {
	return queries.NewGetReviewByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantReviewsQueryHandler() queries.GetRestaurantReviewsQueryHandler {
	return queries.NewGetRestaurantReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReviewsQueryHandler() queries.ListReviewsQueryHandler {
	return queries.NewListReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAppReviewsQueryHandler() queries.ListAppReviewsQueryHandler {
	return queries.NewListAppReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyAppReviewQueryHandler() queries.GetMyAppReviewQueryHandler {
	return queries.NewGetMyAppReviewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateDeliverDueOrdersCommandHandler()
	watchdog := jobs.NewDeliveryWatchdogJob(&handler, c.cfg.Watchdog.Interval, c.cfg.Watchdog.ShutdownTimeout, c.logger)
	return jobs.NewJobManager(watchdog)
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		OrderStatus:          c.CreateOrderStatusCommandHandler(),
		CreateReview:         c.CreateCreateReviewCommandHandler(),
		DeleteReview:         c.CreateDeleteReviewCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetUserOrders:        c.CreateGetUserOrdersQueryHandler(),
		GetOrderStats:        c.CreateGetOrderStatsQueryHandler(),
		GetReviewByOrder:     c.CreateGetReviewByOrderQueryHandler(),
		GetRestaurantReviews: c.CreateGetRestaurantReviewsQueryHandler(),
		ListReviews:          c.CreateListReviewsQueryHandler(),
		CreateAppReview:      c.CreateCreateAppReviewCommandHandler(),
		ListAppReviews:       c.CreateListAppReviewsQueryHandler(),
		GetMyAppReview:       c.CreateGetMyAppReviewQueryHandler(),
	}, httpadapter.NewIdentity(httpadapter.ParseSuperAdminIDs(c.cfg.Auth.SuperAdminIDs)), c.clock.Location())

	doc, err := api.Load()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	health, err := healthgo.New(
		healthgo.WithComponent(healthgo.Component{Name: c.cfg.App.Name, Version: c.cfg.App.Version}),
		healthgo.WithChecks(c.checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("create health checker: %w", err)
	}

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		ServiceName: c.cfg.App.Name,
		CORSOrigins: c.cfg.HTTP.CORS.Origins,
		Spec:        api.OpenAPI,
		Doc:         doc,
		Health:      health,
		Logger:      c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncAppReviewUoWFactory func() commands.AppReviewUoW

func (f FuncAppReviewUoWFactory) Create() commands.AppReviewUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
