package commands_test

import (
	"context"

	"wreaths/internal/core/application/usecases/commands"
	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockEnquiryRepository struct{ mock.Mock }

func (m *MockEnquiryRepository) Add(ctx context.Context, e *bespoke.Enquiry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnquiryRepository) Update(ctx context.Context, e *bespoke.Enquiry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnquiryRepository) Get(ctx context.Context, id kernel.UUID) (*bespoke.Enquiry, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*bespoke.Enquiry)
	return e, args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEnquiryUoW struct{ mockTx }

func (m *MockEnquiryUoW) EnquiryRepository() ports.EnquiryRepository {
	args := m.Called()
	return args.Get(0).(ports.EnquiryRepository)
}

type MockEnquiryUoWFactory struct{ mock.Mock }

func (m *MockEnquiryUoWFactory) Create() commands.EnquiryUoW {
	args := m.Called()
	return args.Get(0).(commands.EnquiryUoW)
}

func newStoredOrder(method order.DeliveryMethod) *order.Order {
	customer, err := order.NewCustomer("Holly Berry", "holly@example.com")
	if err != nil {
		panic(err)
	}
	item, err := order.NewItem("Winter Berry Door Wreath", 1, kernel.MustMoney("45"))
	if err != nil {
		panic(err)
	}
	cost := kernel.ZeroMoney()
	if method == order.Standard {
		cost = kernel.MustMoney("4.95")
	}
	o, err := order.NewOrder(kernel.NewUUID(), customer, method, []order.Item{item}, cost)
	if err != nil {
		panic(err)
	}
	return o
}

func bespokeForm() bespoke.Form {
	return bespoke.Form{
		Name:            "Ivy Green",
		Email:           "ivy@example.com",
		ArrangementType: "door wreath",
		ColourTheme:     "sage and cream",
		WreathBase:      "moss",
		Size:            "small",
		Ribbon:          true,
	}
}
