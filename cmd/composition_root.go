package cmd

import (
	"log/slog"
	"time"

	httpadapter "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/in/queue"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/rabbit"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/ports"
	"parcels/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All lifecycle-scoped
// resources (database, broker, cache) are created in main and passed in; the
// root only assembles them.
type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	gateway      *rabbit.Gateway
	rateProvider ports.RateProvider
	logger       *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	gateway *rabbit.Gateway,
	rateProvider ports.RateProvider,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:      gateway,
		rateProvider: rateProvider,
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	var f commands.ParcelTypeUoWFactory = FuncParcelTypeUoWFactory(func() commands.ParcelTypeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParcelCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.CreateParcelUoWFactory = FuncCreateParcelUoWFactory(func() commands.CreateParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateCalculateShippingCostCommandHandler() commands.CalculateShippingCostCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCalculateShippingCostCommandHandler(f, c.rateProvider, c.logger)
}

func (c *CompositionRoot) CreateAssignCompanyCommandHandler() commands.AssignCompanyCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCompanyCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelTypesQueryHandler() queries.GetParcelTypesQueryHandler {
	return queries.NewGetParcelTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelTypeQueryHandler() queries.GetParcelTypeQueryHandler {
	return queries.NewGetParcelTypeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSessionMiddleware() *httpadapter.SessionMiddleware {
	var f httpadapter.SessionUoWFactory = FuncSessionUoWFactory(func() httpadapter.SessionUoW {
		return c.uowFactory.Create()
	})
	return httpadapter.NewSessionMiddleware(f, c.config.SessionCookieName, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	registerHandler := c.CreateRegisterParcelCommandHandler()
	assignHandler := c.CreateAssignCompanyCommandHandler()

	return httpadapter.NewServer(
		registerHandler,
		assignHandler,
		c.CreateGetParcelQueryHandler(),
		c.CreateListParcelsQueryHandler(),
		c.CreateGetParcelTypesQueryHandler(),
		c.CreateGetParcelTypeQueryHandler(),
		c.CreateSessionMiddleware(),
	)
}

func (c *CompositionRoot) CreateQueueConsumer() *queue.Consumer {
	createHandler := c.CreateCreateParcelCommandHandler()
	calculateHandler := c.CreateCalculateShippingCostCommandHandler()

	return queue.NewConsumer(
		c.gateway,
		createHandler,
		calculateHandler,
		rabbit.QueueParcelCreate,
		rabbit.QueueParcelCalculate,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})

	sweepJob := jobs.NewCostingSweepJob(
		f,
		c.gateway,
		c.config.SweepSchedule,
		time.Duration(c.config.SweepThresholdSeconds)*time.Second,
		c.logger,
	)

	return jobs.NewJobManager(sweepJob)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncParcelTypeUoWFactory func() commands.ParcelTypeUoW

func (f FuncParcelTypeUoWFactory) Create() commands.ParcelTypeUoW {
	return f()
}

type FuncCreateParcelUoWFactory func() commands.CreateParcelUoW

func (f FuncCreateParcelUoWFactory) Create() commands.CreateParcelUoW {
	return f()
}

type FuncSessionUoWFactory func() httpadapter.SessionUoW

func (f FuncSessionUoWFactory) Create() httpadapter.SessionUoW {
	return f()
}
