package cmd

import (
	"log/slog"

	httpin "dotrack/internal/adapters/in/http"
	"dotrack/internal/adapters/out/postgres"
	"dotrack/internal/core/application/usecases/commands"
	"dotrack/internal/core/application/usecases/queries"
	"dotrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      commands.SystemClock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReceiveDeliveryOrderCommandHandler() commands.ReceiveDeliveryOrderCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveDeliveryOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDispatchDeliveryOrderCommandHandler() commands.DispatchDeliveryOrderCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchDeliveryOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateApproveDeliveryOrderCommandHandler() commands.ApproveDeliveryOrderCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveDeliveryOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRejectDeliveryOrderCommandHandler() commands.RejectDeliveryOrderCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectDeliveryOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreatePartyCommandHandler() commands.CreatePartyCommandHandler {
	var f commands.PartyUoWFactory = FuncPartyUoWFactory(func() commands.PartyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartyCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSetUserStatusCommandHandler() commands.SetUserStatusCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCleanupResetTokensCommandHandler() commands.CleanupResetTokensCommandHandler {
	var f commands.TokenUoWFactory = FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupResetTokensCommandHandler(f)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		CreateDeliveryOrder:   c.CreateCreateDeliveryOrderCommandHandler(),
		ReceiveDeliveryOrder:  c.CreateReceiveDeliveryOrderCommandHandler(),
		DispatchDeliveryOrder: c.CreateDispatchDeliveryOrderCommandHandler(),
		ApproveDeliveryOrder:  c.CreateApproveDeliveryOrderCommandHandler(),
		RejectDeliveryOrder:   c.CreateRejectDeliveryOrderCommandHandler(),
		CreateParty:           c.CreateCreatePartyCommandHandler(),
		RegisterUser:          c.CreateRegisterUserCommandHandler(),
		SetUserStatus:         c.CreateSetUserStatusCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		DepartmentQueue:    queries.NewGetDepartmentQueueQueryHandler(c.gormDB),
		ProcessedOrders:    queries.NewGetProcessedOrdersQueryHandler(c.gormDB),
		ProjectOfficeBoard: queries.NewGetProjectOfficeBoardQueryHandler(c.gormDB),
		Search:             queries.NewSearchDeliveryOrdersQueryHandler(c.gormDB),
		Details:            queries.NewGetDeliveryOrderDetailsQueryHandler(c.gormDB),
		DashboardStats:     queries.NewGetDashboardStatsQueryHandler(c.gormDB),
		AllDeliveryOrders:  queries.NewGetAllDeliveryOrdersQueryHandler(c.gormDB),
		Parties:            queries.NewGetPartiesQueryHandler(c.gormDB),
		Users:              queries.NewGetUsersQueryHandler(c.gormDB),
	}

	return httpin.NewServer(commandHandlers, queryHandlers)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCleanupResetTokensCommandHandler(), logger)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncPartyUoWFactory func() commands.PartyUoW

func (f FuncPartyUoWFactory) Create() commands.PartyUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}
