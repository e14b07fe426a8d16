package cmd

import (
	"letterpost/internal/adapters/out/postgres"
	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimTaskCommandHandler() commands.ClaimTaskCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceTaskCommandHandler() commands.AdvanceTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateSubordinateCommandHandler() commands.CreateSubordinateCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSubordinateCommandHandler(f, c.config.SubordinateRequireApproval)
}

func (c *CompositionRoot) CreateRequestPromotionCommandHandler() commands.RequestPromotionCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPromotionCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewPromotionCommandHandler() commands.ReviewPromotionCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewPromotionCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseStaleClaimsCommandHandler() commands.ReleaseStaleClaimsCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseStaleClaimsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetClaimableTasksQueryHandler() queries.GetClaimableTasksQueryHandler {
	return queries.NewGetClaimableTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManagedTasksQueryHandler() queries.GetManagedTasksQueryHandler {
	return queries.NewGetManagedTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSubordinatesQueryHandler() queries.GetSubordinatesQueryHandler {
	return queries.NewGetSubordinatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTaskHistoryQueryHandler() queries.GetTaskHistoryQueryHandler {
	return queries.NewGetTaskHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierHistoryQueryHandler() queries.GetCourierHistoryQueryHandler {
	return queries.NewGetCourierHistoryQueryHandler(c.gormDB)
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
