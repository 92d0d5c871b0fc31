package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Estimate a bespoke wreath and report form completion
	// (POST /api/v1/bespoke/preview)
	PreviewBespoke(ctx echo.Context) error
	// List bespoke enquiries, newest first
	// (GET /api/v1/enquiries)
	GetEnquiries(ctx echo.Context, params GetEnquiriesParams) error
	// Submit a completed bespoke form
	// (POST /api/v1/enquiries)
	SubmitEnquiry(ctx echo.Context) error
	// Record that the enquiry was answered
	// (POST /api/v1/enquiries/{enquiryId}/responded)
	MarkEnquiryResponded(ctx echo.Context, enquiryId openapi_types.UUID) error
	// List active orders, oldest first
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Place an order at checkout
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Get an order with its progress
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Advance an order to the next status of its flow
	// (POST /api/v1/orders/{orderId}/status)
	AdvanceOrderStatus(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// PreviewBespoke converts echo context to params.
func (w *ServerInterfaceWrapper) PreviewBespoke(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PreviewBespoke(ctx)
	return err
}

// GetEnquiries converts echo context to params.
func (w *ServerInterfaceWrapper) GetEnquiries(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetEnquiriesParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetEnquiries(ctx, params)
	return err
}

// SubmitEnquiry converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitEnquiry(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SubmitEnquiry(ctx)
	return err
}

// MarkEnquiryResponded converts echo context to params.
func (w *ServerInterfaceWrapper) MarkEnquiryResponded(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "enquiryId" -------------
	var enquiryId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "enquiryId", ctx.Param("enquiryId"), &enquiryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter enquiryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkEnquiryResponded(ctx, enquiryId)
	return err
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// AdvanceOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceOrderStatus(ctx, orderId)
	return err
}

// EchoRouter is the subset of echo's routing methods RegisterHandlers needs; both *echo.Echo
// and *echo.Group satisfy it.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/bespoke/preview", wrapper.PreviewBespoke)
	router.GET(baseURL+"/api/v1/enquiries", wrapper.GetEnquiries)
	router.POST(baseURL+"/api/v1/enquiries", wrapper.SubmitEnquiry)
	router.POST(baseURL+"/api/v1/enquiries/:enquiryId/responded", wrapper.MarkEnquiryResponded)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.AdvanceOrderStatus)
}
