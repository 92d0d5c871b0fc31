package http

import (
	"context"
	"net/http"

	"wreaths/internal/core/application/usecases/commands"
	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error
	}
	SubmitEnquiryHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitEnquiryCommand) error
	}
	MarkEnquiryRespondedHandler interface {
		Handle(ctx context.Context, cmd commands.MarkEnquiryRespondedCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.ActiveOrderView, error)
	}
	GetEnquiryHandler interface {
		Handle(ctx context.Context, query queries.GetEnquiryQuery) (queries.EnquiryView, error)
	}
	ListEnquiriesHandler interface {
		Handle(ctx context.Context, query queries.ListEnquiriesQuery) ([]queries.EnquiryView, error)
	}
	PreviewBespokeHandler interface {
		Handle(query queries.PreviewBespokeQuery) (queries.PreviewBespokeQueryResponse, error)
	}
)

// Handlers groups the use cases the HTTP server delegates to.
type Handlers struct {
	CreateOrder          CreateOrderHandler
	AdvanceOrderStatus   AdvanceOrderStatusHandler
	SubmitEnquiry        SubmitEnquiryHandler
	MarkEnquiryResponded MarkEnquiryRespondedHandler

	GetOrder        GetOrderHandler
	GetActiveOrders GetActiveOrdersHandler
	GetEnquiry      GetEnquiryHandler
	ListEnquiries   ListEnquiriesHandler
	PreviewBespoke  PreviewBespokeHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
	newID    func() kernel.UUID
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.Named("http"),
		newID:    kernel.NewUUID,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(body.Items))
	for i, item := range body.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return badRequest(ctx, "Invalid item price: "+item.Price)
		}
		lines[i] = commands.OrderLine{Title: item.Title, Quantity: item.Quantity, Price: price}
	}

	deliveryCost := decimal.Zero
	if body.DeliveryCost != nil {
		cost, err := decimal.NewFromString(*body.DeliveryCost)
		if err != nil {
			return badRequest(ctx, "Invalid delivery cost: "+*body.DeliveryCost)
		}
		deliveryCost = cost
	}

	orderID := s.newID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		body.CustomerName,
		body.CustomerEmail,
		string(body.DeliveryMethod),
		lines,
		deliveryCost,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, "Failed to retrieve order")
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	query, err := queries.NewGetActiveOrdersQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.ActiveOrder{
			Id:             o.ID.Value(),
			CustomerName:   o.CustomerName,
			DeliveryMethod: servers.DeliveryMethod(o.DeliveryMethod.String()),
			Status:         servers.OrderStatus(o.Status.String()),
			Next:           servers.OrderStatus(o.Next.String()),
			Total:          o.Total.String(),
			CreatedAt:      o.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	return s.respondWithOrder(ctx, http.StatusOK, id, "Failed to retrieve order")
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body servers.AdvanceOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	var trackingNumber string
	if body.TrackingNumber != nil {
		trackingNumber = *body.TrackingNumber
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, string(body.Status), trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err = s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update order status")
	}

	return s.respondWithOrder(ctx, http.StatusOK, id, "Failed to retrieve order")
}

// PreviewBespoke handles POST /api/v1/bespoke/preview.
func (s *Server) PreviewBespoke(ctx echo.Context) error {
	var body servers.PreviewBespokeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	resp, err := s.handlers.PreviewBespoke.Handle(queries.NewPreviewBespokeQuery(formFromBody(body)))
	if err != nil {
		return s.fail(ctx, err, "Failed to preview bespoke wreath")
	}

	preview := servers.BespokePreview{
		QuoteRequired:   !resp.HasEstimate,
		CompletionRatio: float32(resp.CompletionRatio),
		MissingFields:   make([]string, len(resp.MissingFields)),
	}
	if resp.HasEstimate {
		estimate := resp.Estimate.String()
		preview.Estimate = &estimate
	}
	for i, field := range resp.MissingFields {
		preview.MissingFields[i] = field.String()
	}
	return ctx.JSON(http.StatusOK, preview)
}

// SubmitEnquiry handles POST /api/v1/enquiries.
func (s *Server) SubmitEnquiry(ctx echo.Context) error {
	var body servers.SubmitEnquiryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	enquiryID := s.newID()
	cmd, err := commands.NewSubmitEnquiryCommand(enquiryID, formFromBody(body))
	if err != nil {
		return badRequest(ctx, "Invalid enquiry: "+err.Error())
	}
	if err = s.handlers.SubmitEnquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to submit enquiry")
	}

	query, err := queries.NewGetEnquiryQuery(enquiryID)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve enquiry")
	}
	view, err := s.handlers.GetEnquiry.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve enquiry")
	}
	return ctx.JSON(http.StatusCreated, enquiryToResponse(view))
}

// GetEnquiries handles GET /api/v1/enquiries.
func (s *Server) GetEnquiries(ctx echo.Context, params servers.GetEnquiriesParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	query, err := queries.NewListEnquiriesQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	enquiries, err := s.handlers.ListEnquiries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve enquiries")
	}

	response := make([]servers.Enquiry, len(enquiries))
	for i, e := range enquiries {
		response[i] = enquiryToResponse(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkEnquiryResponded handles POST /api/v1/enquiries/{enquiryId}/responded.
func (s *Server) MarkEnquiryResponded(ctx echo.Context, enquiryId uuid.UUID) error {
	id, err := kernel.UUIDFrom(enquiryId)
	if err != nil {
		return badRequest(ctx, "Invalid enquiry ID")
	}
	cmd, err := commands.NewMarkEnquiryRespondedCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid enquiry ID")
	}
	if err = s.handlers.MarkEnquiryResponded.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to mark enquiry responded")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, id kernel.UUID, failure string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, failure)
	}
	return ctx.JSON(status, orderToResponse(resp))
}

func formFromBody(body servers.BespokeForm) bespoke.Form {
	return bespoke.Form{
		Name:            deref(body.Name),
		Email:           deref(body.Email),
		Phone:           deref(body.Phone),
		ArrangementType: deref(body.ArrangementType),
		ColourTheme:     deref(body.ColourTheme),
		WreathBase:      deref(body.WreathBase),
		Size:            deref(body.Size),
		Ribbon:          body.Ribbon != nil && *body.Ribbon,
		Notes:           deref(body.Notes),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
