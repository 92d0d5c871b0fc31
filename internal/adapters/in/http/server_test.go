package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "wreaths/internal/adapters/in/http"
	"wreaths/internal/core/application/usecases/commands"
	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/core/domain/services"
	"wreaths/internal/generated/servers"
	"wreaths/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCreateOrder struct{ mock.Mock }

func (m *mockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockAdvance struct{ mock.Mock }

func (m *mockAdvance) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockSubmitEnquiry struct{ mock.Mock }

func (m *mockSubmitEnquiry) Handle(ctx context.Context, cmd commands.SubmitEnquiryCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockMarkResponded struct{ mock.Mock }

func (m *mockMarkResponded) Handle(ctx context.Context, cmd commands.MarkEnquiryRespondedCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockGetOrder struct{ mock.Mock }

func (m *mockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type mockGetActiveOrders struct{ mock.Mock }

func (m *mockGetActiveOrders) Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.ActiveOrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ActiveOrderView)
	return views, args.Error(1)
}

type mockGetEnquiry struct{ mock.Mock }

func (m *mockGetEnquiry) Handle(ctx context.Context, query queries.GetEnquiryQuery) (queries.EnquiryView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.EnquiryView), args.Error(1)
}

type mockListEnquiries struct{ mock.Mock }

func (m *mockListEnquiries) Handle(ctx context.Context, query queries.ListEnquiriesQuery) ([]queries.EnquiryView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.EnquiryView)
	return views, args.Error(1)
}

type fixture struct {
	createOrder   *mockCreateOrder
	advance       *mockAdvance
	submit        *mockSubmitEnquiry
	markResponded *mockMarkResponded
	getOrder      *mockGetOrder
	activeOrders  *mockGetActiveOrders
	getEnquiry    *mockGetEnquiry
	listEnquiries *mockListEnquiries
	handler       http.Handler
}

func newFixture() *fixture {
	f := &fixture{
		createOrder:   new(mockCreateOrder),
		advance:       new(mockAdvance),
		submit:        new(mockSubmitEnquiry),
		markResponded: new(mockMarkResponded),
		getOrder:      new(mockGetOrder),
		activeOrders:  new(mockGetActiveOrders),
		getEnquiry:    new(mockGetEnquiry),
		listEnquiries: new(mockListEnquiries),
	}
	logger := zap.NewNop()
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:          f.createOrder,
		AdvanceOrderStatus:   f.advance,
		SubmitEnquiry:        f.submit,
		MarkEnquiryResponded: f.markResponded,
		GetOrder:             f.getOrder,
		GetActiveOrders:      f.activeOrders,
		GetEnquiry:           f.getEnquiry,
		ListEnquiries:        f.listEnquiries,
		PreviewBespoke:       queries.NewPreviewBespokeQueryHandler(bespoke.DefaultPriceTable()),
	}, logger)
	f.handler = httpadapter.NewRouter(server, logger)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func dispatchedOrder(id kernel.UUID) queries.GetOrderQueryResponse {
	progress, _ := services.NewProgressTracker().TrackStatus(order.Standard, order.Dispatched)
	return queries.GetOrderQueryResponse{
		ID:             id,
		CustomerName:   "Ada Lovelace",
		CustomerEmail:  "ada@example.com",
		DeliveryMethod: order.Standard,
		Status:         order.Dispatched,
		Items: []queries.OrderItemView{{
			Title:     "Winter Berry Wreath",
			Quantity:  1,
			Price:     kernel.MustMoney("50"),
			LineTotal: kernel.MustMoney("50"),
		}},
		Subtotal:       kernel.MustMoney("50"),
		DeliveryCost:   kernel.MustMoney("4.95"),
		Total:          kernel.MustMoney("54.95"),
		TrackingNumber: "RM0001GB",
		CreatedAt:      time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 12, 2, 10, 0, 0, 0, time.UTC),
		Progress:       progress,
	}
}

func TestHealth(t *testing.T) {
	rec := newFixture().do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestOpenAPIDocument(t *testing.T) {
	rec := newFixture().do(t, http.MethodGet, "/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/{orderId}/status")
}

func TestCreateOrder_ReturnsStoredOrder(t *testing.T) {
	f := newFixture()
	f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.DeliveryMethod() == order.Standard &&
			len(cmd.Lines()) == 1 &&
			cmd.DeliveryCost().String() == "4.95"
	})).Return(nil).Once()
	f.getOrder.On("Handle", mock.Anything, mock.Anything).
		Return(dispatchedOrder(kernel.NewUUID()), nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders", `{
		"customerName": "Ada Lovelace",
		"customerEmail": "ada@example.com",
		"deliveryMethod": "standard",
		"items": [{"title": "Winter Berry Wreath", "quantity": 1, "price": "50"}],
		"deliveryCost": "4.95"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "54.95", body.Total)
	require.NotNil(t, body.Progress.Next)
	assert.Equal(t, servers.OrderStatusDelivered, *body.Progress.Next)
	assert.Equal(t, servers.Current, body.Progress.Steps[2].State)
	f.createOrder.AssertExpectations(t)
}

func TestCreateOrder_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"customerName":`},
		{name: "unknown delivery method", body: `{"customerName":"A","customerEmail":"a@b.c","deliveryMethod":"drone","items":[{"title":"x","quantity":1,"price":"1"}]}`},
		{name: "no items", body: `{"customerName":"A","customerEmail":"a@b.c","deliveryMethod":"standard","items":[]}`},
		{name: "bad price", body: `{"customerName":"A","customerEmail":"a@b.c","deliveryMethod":"standard","items":[{"title":"x","quantity":1,"price":"ten"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			rec := f.do(t, http.MethodPost, "/api/v1/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
			f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestAdvanceOrderStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:     "illegal transition",
			err:      &order.IllegalTransitionError{From: order.Pending, To: order.Dispatched, Expected: order.Processing},
			wantCode: http.StatusConflict,
		},
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("orderId", "x"),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "stored status outside the flow",
			err:      errors.Join(order.ErrStatusNotInFlow, errs.NewValueIsInvalidError("status")),
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "stored delivery method unknown",
			err:      order.ErrInvalidDeliveryMethod,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "tracking number on the wrong step",
			err:      errs.NewValueIsInvalidError("trackingNumber"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:        "unexpected failure",
			err:         errors.New("connection reset"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to update order status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.advance.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := f.do(t, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
				`{"status":"dispatched"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
			f.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestAdvanceOrderStatus_PassesTrackingNumber(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.advance.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderStatusCommand) bool {
		return cmd.OrderID().IsEqual(id) && cmd.Target() == order.Dispatched && cmd.TrackingNumber() == "RM0001GB"
	})).Return(nil).Once()
	f.getOrder.On("Handle", mock.Anything, mock.Anything).Return(dispatchedOrder(id), nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders/"+id.String()+"/status",
		`{"status":"dispatched","trackingNumber":"RM0001GB"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.TrackingNumber)
	assert.Equal(t, "RM0001GB", *body.TrackingNumber)
	f.advance.AssertExpectations(t)
}

func TestAdvanceOrderStatus_BadInput(t *testing.T) {
	f := newFixture()

	badID := f.do(t, http.MethodPost, "/api/v1/orders/not-a-uuid/status", `{"status":"processing"}`)
	unknownStatus := f.do(t, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"shipped"}`)

	assert.Equal(t, http.StatusBadRequest, badID.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, badID).Code)
	assert.Equal(t, http.StatusBadRequest, unknownStatus.Code)
	f.advance.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetOrders_StatusFilter(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.activeOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetActiveOrdersQuery) bool {
		status, ok := q.Status()
		return ok && status == order.Processing
	})).Return([]queries.ActiveOrderView{{
		ID:             id,
		CustomerName:   "Ada Lovelace",
		DeliveryMethod: order.Collection,
		Status:         order.Processing,
		Next:           order.Collected,
		Total:          kernel.MustMoney("70"),
	}}, nil).Once()

	rec := f.do(t, http.MethodGet, "/api/v1/orders?status=processing", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.ActiveOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, servers.OrderStatusCollected, body[0].Next)
	assert.Equal(t, "70.00", body[0].Total)

	rejected := f.do(t, http.MethodGet, "/api/v1/orders?status=shipped", "")
	assert.Equal(t, http.StatusBadRequest, rejected.Code)
}

func TestPreviewBespoke(t *testing.T) {
	f := newFixture()

	priced := f.do(t, http.MethodPost, "/api/v1/bespoke/preview",
		`{"name":"Ivy","email":"ivy@example.com","wreathBase":"moss","size":"medium","ribbon":true}`)
	custom := f.do(t, http.MethodPost, "/api/v1/bespoke/preview", `{"size":"custom"}`)

	require.Equal(t, http.StatusOK, priced.Code)
	var body servers.BespokePreview
	require.NoError(t, json.Unmarshal(priced.Body.Bytes(), &body))
	require.NotNil(t, body.Estimate)
	assert.Equal(t, "60.00", *body.Estimate)
	assert.False(t, body.QuoteRequired)
	assert.InDelta(t, 4.0/6.0, body.CompletionRatio, 1e-6)
	assert.Equal(t, []string{"arrangementType", "colourTheme"}, body.MissingFields)

	require.Equal(t, http.StatusOK, custom.Code)
	body = servers.BespokePreview{}
	require.NoError(t, json.Unmarshal(custom.Body.Bytes(), &body))
	assert.Nil(t, body.Estimate)
	assert.True(t, body.QuoteRequired)
}

func TestSubmitEnquiry(t *testing.T) {
	f := newFixture()
	price := kernel.MustMoney("50")
	f.submit.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	f.getEnquiry.On("Handle", mock.Anything, mock.Anything).Return(queries.EnquiryView{
		ID:             kernel.NewUUID(),
		Name:           "Ivy Green",
		Email:          "ivy@example.com",
		Size:           bespoke.SizeSmall,
		Ribbon:         true,
		EstimatedPrice: &price,
		Status:         bespoke.EnquiryNew,
	}, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/enquiries", `{"name":"Ivy Green","size":"small","ribbon":true}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body servers.Enquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.EstimatedPrice)
	assert.Equal(t, "50.00", *body.EstimatedPrice)
	assert.Equal(t, servers.EnquiryStatusNew, body.Status)
}

func TestSubmitEnquiry_IncompleteForm(t *testing.T) {
	f := newFixture()
	f.submit.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewValueIsRequiredError("arrangementType")).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/enquiries", `{"name":"Ivy"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "arrangementType")
	f.getEnquiry.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestMarkEnquiryResponded(t *testing.T) {
	f := newFixture()
	f.markResponded.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/enquiries/"+kernel.NewUUID().String()+"/responded", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	f.markResponded.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("enquiryId", "x")).Once()
	rec = f.do(t, http.MethodPost, "/api/v1/enquiries/"+kernel.NewUUID().String()+"/responded", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEnquiries_InternalErrorIsGeneric(t *testing.T) {
	f := newFixture()
	f.listEnquiries.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("pq: relation does not exist")).Once()

	rec := f.do(t, http.MethodGet, "/api/v1/enquiries", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to retrieve enquiries", decodeError(t, rec).Message)
}

func TestUnknownRoute_UsesErrorShape(t *testing.T) {
	rec := newFixture().do(t, http.MethodGet, "/api/v1/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}
