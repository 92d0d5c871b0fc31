package cmd

import (
	"fmt"

	"wreaths/internal/adapters/in/http"
	"wreaths/internal/adapters/out/postgres"
	"wreaths/internal/core/application/usecases/commands"
	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	prices     bespoke.PriceTable
	logger     *zap.Logger
}

// NewCompositionRoot loads the price table (the built-in one unless PRICE_TABLE_PATH is set)
// and wires everything else on top of gormDB.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	prices := bespoke.DefaultPriceTable()
	if config.PriceTablePath != "" {
		loaded, err := bespoke.LoadPriceTableFile(config.PriceTablePath)
		if err != nil {
			return nil, fmt.Errorf("price table: %w", err)
		}
		prices = loaded
		logger.Info("price table loaded", zap.String("path", config.PriceTablePath))
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		prices:     prices,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) enquiryUoWFactory() commands.EnquiryUoWFactory {
	return FuncEnquiryUoWFactory(func() commands.EnquiryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitEnquiryCommandHandler() commands.SubmitEnquiryCommandHandler {
	return commands.NewSubmitEnquiryCommandHandler(c.enquiryUoWFactory(), c.prices)
}

func (c *CompositionRoot) CreateMarkEnquiryRespondedCommandHandler() commands.MarkEnquiryRespondedCommandHandler {
	return commands.NewMarkEnquiryRespondedCommandHandler(c.enquiryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEnquiryQueryHandler() queries.GetEnquiryQueryHandler {
	return queries.NewGetEnquiryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEnquiriesQueryHandler() queries.ListEnquiriesQueryHandler {
	return queries.NewListEnquiriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePreviewBespokeQueryHandler() queries.PreviewBespokeQueryHandler {
	return queries.NewPreviewBespokeQueryHandler(c.prices)
}

func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		AdvanceOrderStatus:   c.CreateAdvanceOrderStatusCommandHandler(),
		SubmitEnquiry:        c.CreateSubmitEnquiryCommandHandler(),
		MarkEnquiryResponded: c.CreateMarkEnquiryRespondedCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetActiveOrders:      c.CreateGetActiveOrdersQueryHandler(),
		GetEnquiry:           c.CreateGetEnquiryQueryHandler(),
		ListEnquiries:        c.CreateListEnquiriesQueryHandler(),
		PreviewBespoke:       c.CreatePreviewBespokeQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.config.BacklogCron,
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateListEnquiriesQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEnquiryUoWFactory func() commands.EnquiryUoW

func (f FuncEnquiryUoWFactory) Create() commands.EnquiryUoW {
	return f()
}
