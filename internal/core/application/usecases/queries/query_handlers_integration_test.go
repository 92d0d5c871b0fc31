package queries_test

import (
	"context"
	"testing"
	"time"

	"wreaths/internal/adapters/out/postgres/enquiryrepo"
	"wreaths/internal/adapters/out/postgres/orderrepo"
	"wreaths/internal/adapters/out/postgres/pgtest"
	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/core/domain/services"
	"wreaths/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	database    *pgtest.Database
	orderRepo   *orderrepo.GormOrderRepository
	enquiryRepo *enquiryrepo.GormEnquiryRepository
	base        time.Time
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.orderRepo = orderrepo.NewGormOrderRepository(database.DB, noopTracker{})
	suite.enquiryRepo = enquiryrepo.NewGormEnquiryRepository(database.DB, noopTracker{})
	suite.base = time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_ReturnsLinesAndProgress() {
	ctx := context.Background()
	o := suite.addOrder(order.Standard, 0, order.Processing, order.Dispatched)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	resp, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(order.Standard, resp.DeliveryMethod)
	suite.Equal(order.Dispatched, resp.Status)
	suite.Equal("RM0001GB", resp.TrackingNumber)
	suite.Equal("64.95", resp.Total.String())
	suite.Require().Len(resp.Items, 2)
	suite.Equal("Winter Berry Wreath", resp.Items[0].Title)
	suite.Equal("20.00", resp.Items[1].LineTotal.String())

	suite.Equal(2, resp.Progress.CurrentIndex)
	suite.True(resp.Progress.HasNext)
	suite.Equal(order.Delivered, resp.Progress.Next)
	suite.False(resp.Progress.PromptTrackingNumber)
	suite.Equal(services.StepDone, resp.Progress.Steps[1].State)
	suite.Equal(services.StepCurrent, resp.Progress.Steps[2].State)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_Missing() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_StatusOutsideFlow() {
	o := suite.addOrder(order.Collection, 0)
	suite.Require().NoError(suite.database.DB.
		Exec("UPDATE orders SET status = 'dispatched' WHERE id = ?", o.ID().Value()).Error)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, order.ErrStatusNotInFlow)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_RejectsRowsTheWriteSideRejects() {
	testCases := []struct {
		name   string
		update string
		target error
	}{
		{
			name:   "total does not add up",
			update: "UPDATE orders SET total = total + 1 WHERE id = ?",
			target: order.ErrTotalMismatch,
		},
		{
			name:   "subtotal does not match lines",
			update: "UPDATE orders SET subtotal = subtotal + 1, total = total + 1 WHERE id = ?",
			target: order.ErrTotalMismatch,
		},
		{
			name:   "tracking number before dispatch",
			update: "UPDATE orders SET tracking_number = 'RM0002GB' WHERE id = ?",
			target: errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			o := suite.addOrder(order.Standard, 0, order.Processing)
			suite.Require().NoError(suite.database.DB.Exec(tc.update, o.ID().Value()).Error)

			query, err := queries.NewGetOrderQuery(o.ID())
			suite.Require().NoError(err)
			_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)

			suite.Require().ErrorIs(err, tc.target)
		})
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetActiveOrders_ExcludesTerminalStepsOldestFirst() {
	ctx := context.Background()
	delivered := suite.addOrder(order.Standard, 0, order.Processing, order.Dispatched, order.Delivered)
	collected := suite.addOrder(order.Collection, 1, order.Processing, order.Collected)
	pending := suite.addOrder(order.Standard, 2)
	processing := suite.addOrder(order.Collection, 3, order.Processing)
	older := suite.addOrder(order.Standard, -1, order.Processing)

	query, err := queries.NewGetActiveOrdersQuery("")
	suite.Require().NoError(err)
	views, err := queries.NewGetActiveOrdersQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID.String()
	}
	suite.Equal([]string{older.ID().String(), pending.ID().String(), processing.ID().String()}, ids)
	suite.NotContains(ids, delivered.ID().String())
	suite.NotContains(ids, collected.ID().String())

	suite.Equal(order.Collected, views[2].Next)
	suite.Equal(order.Processing, views[1].Next)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetActiveOrders_StatusFilter() {
	ctx := context.Background()
	suite.addOrder(order.Standard, 0)
	standard := suite.addOrder(order.Standard, 1, order.Processing)
	collection := suite.addOrder(order.Collection, 2, order.Processing)

	query, err := queries.NewGetActiveOrdersQuery("processing")
	suite.Require().NoError(err)
	views, err := queries.NewGetActiveOrdersQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.True(views[0].ID.IsEqual(standard.ID()))
	suite.Equal(order.Dispatched, views[0].Next)
	suite.True(views[1].ID.IsEqual(collection.ID()))
	suite.Equal(order.Collected, views[1].Next)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListEnquiries_NewestFirstWithFilter() {
	ctx := context.Background()
	first := suite.addEnquiry("small", 0, false)
	second := suite.addEnquiry("custom", 1, true)
	third := suite.addEnquiry("large", 2, false)

	all, err := queries.NewListEnquiriesQuery("")
	suite.Require().NoError(err)
	views, err := queries.NewListEnquiriesQueryHandler(suite.database.DB).Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(views, 3)
	suite.True(views[0].ID.IsEqual(third.ID()))
	suite.True(views[2].ID.IsEqual(first.ID()))
	suite.Require().NotNil(views[0].EstimatedPrice)
	suite.Equal("70.00", views[0].EstimatedPrice.String())
	suite.Nil(views[1].EstimatedPrice)

	responded, err := queries.NewListEnquiriesQuery("responded")
	suite.Require().NoError(err)
	views, err = queries.NewListEnquiriesQueryHandler(suite.database.DB).Handle(ctx, responded)
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.True(views[0].ID.IsEqual(second.ID()))
	suite.Equal(bespoke.EnquiryResponded, views[0].Status)
	suite.NotNil(views[0].RespondedAt)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetEnquiry() {
	ctx := context.Background()
	stored := suite.addEnquiry("extra-large", 0, false)

	query, err := queries.NewGetEnquiryQuery(stored.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetEnquiryQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(bespoke.SizeExtraLarge, view.Size)
	suite.Equal("90.00", view.EstimatedPrice.String())
	suite.Equal(bespoke.EnquiryNew, view.Status)

	missing, err := queries.NewGetEnquiryQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetEnquiryQueryHandler(suite.database.DB).Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// addOrder stores an order advanced through steps, created offset minutes after base.
func (suite *QueryHandlersIntegrationTestSuite) addOrder(
	method order.DeliveryMethod,
	offset int,
	steps ...order.Status,
) *order.Order {
	ctx := context.Background()
	customer, err := order.NewCustomer("Ada Lovelace", "ada@example.com")
	suite.Require().NoError(err)
	wreath, err := order.NewItem("Winter Berry Wreath", 1, kernel.MustMoney("40"))
	suite.Require().NoError(err)
	garland, err := order.NewItem("Eucalyptus Garland", 2, kernel.MustMoney("10"))
	suite.Require().NoError(err)

	cost := kernel.ZeroMoney()
	if method == order.Standard {
		cost = kernel.MustMoney("4.95")
	}
	o, err := order.NewOrder(kernel.NewUUID(), customer, method, []order.Item{wreath, garland}, cost)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	for _, step := range steps {
		tracking := ""
		if step == order.Dispatched {
			tracking = "RM0001GB"
		}
		_, err = o.Advance(step, tracking)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	}

	createdAt := suite.base.Add(time.Duration(offset) * time.Minute)
	suite.Require().NoError(suite.database.DB.
		Exec("UPDATE orders SET created_at = ? WHERE id = ?", createdAt, o.ID().Value()).Error)
	return o
}

func (suite *QueryHandlersIntegrationTestSuite) addEnquiry(size string, offset int, responded bool) *bespoke.Enquiry {
	ctx := context.Background()
	e, err := bespoke.NewEnquiry(kernel.NewUUID(), bespoke.Form{
		Name:            "Ivy Green",
		Email:           "ivy@example.com",
		ArrangementType: "door wreath",
		ColourTheme:     "sage and cream",
		WreathBase:      "moss",
		Size:            size,
	}, bespoke.DefaultPriceTable())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.enquiryRepo.Add(ctx, e))

	if responded {
		_, err = e.MarkResponded(suite.base)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.enquiryRepo.Update(ctx, e))
	}

	createdAt := suite.base.Add(time.Duration(offset) * time.Minute)
	suite.Require().NoError(suite.database.DB.
		Exec("UPDATE enquiries SET created_at = ? WHERE id = ?", createdAt, e.ID().Value()).Error)
	return e
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
