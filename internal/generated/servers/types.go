// Package servers holds the HTTP contract of the service: the embedded OpenAPI document,
// the wire types it defines and the echo binding layer in front of ServerInterface.
//
// The layout follows oapi-codegen's echo server output, but the Go files are maintained by
// hand: a change to openapi.yaml has to be mirrored in the types and in RegisterHandlers.
// The package tests fail when an operation of the document has no route.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for DeliveryMethod.
const (
	Collection DeliveryMethod = "collection"
	Standard   DeliveryMethod = "standard"
)

// Defines values for EnquiryStatus.
const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusResponded EnquiryStatus = "responded"
)

// Defines values for OrderStatus.
const (
	OrderStatusCollected  OrderStatus = "collected"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
)

// Defines values for ProgressStepState.
const (
	Current  ProgressStepState = "current"
	Done     ProgressStepState = "done"
	Upcoming ProgressStepState = "upcoming"
)

// ActiveOrder defines model for ActiveOrder.
type ActiveOrder struct {
	CreatedAt      time.Time          `json:"createdAt"`
	CustomerName   string             `json:"customerName"`
	DeliveryMethod DeliveryMethod     `json:"deliveryMethod"`
	Id             openapi_types.UUID `json:"id"`
	Next           OrderStatus        `json:"next"`
	Status         OrderStatus        `json:"status"`
	Total          Money              `json:"total"`
}

// AdvanceStatus defines model for AdvanceStatus.
type AdvanceStatus struct {
	Status         OrderStatus `json:"status"`
	TrackingNumber *string     `json:"trackingNumber,omitempty"`
}

// BespokeForm defines model for BespokeForm.
type BespokeForm struct {
	ArrangementType *string `json:"arrangementType,omitempty"`
	ColourTheme     *string `json:"colourTheme,omitempty"`
	Email           *string `json:"email,omitempty"`
	Name            *string `json:"name,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Ribbon          *bool   `json:"ribbon,omitempty"`

	// Size small, medium, large, extra-large or custom
	Size       *string `json:"size,omitempty"`
	WreathBase *string `json:"wreathBase,omitempty"`
}

// BespokePreview defines model for BespokePreview.
type BespokePreview struct {
	CompletionRatio float32  `json:"completionRatio"`
	Estimate        *Money   `json:"estimate,omitempty"`
	MissingFields   []string `json:"missingFields"`
	QuoteRequired   bool     `json:"quoteRequired"`
}

// DeliveryMethod defines model for DeliveryMethod.
type DeliveryMethod string

// Enquiry defines model for Enquiry.
type Enquiry struct {
	ArrangementType string             `json:"arrangementType"`
	ColourTheme     string             `json:"colourTheme"`
	CreatedAt       time.Time          `json:"createdAt"`
	Email           string             `json:"email"`
	EstimatedPrice  *Money             `json:"estimatedPrice,omitempty"`
	Id              openapi_types.UUID `json:"id"`
	Name            string             `json:"name"`
	Notes           *string            `json:"notes,omitempty"`
	Phone           *string            `json:"phone,omitempty"`
	RespondedAt     *time.Time         `json:"respondedAt,omitempty"`
	Ribbon          bool               `json:"ribbon"`
	Size            string             `json:"size"`
	Status          EnquiryStatus      `json:"status"`
	WreathBase      string             `json:"wreathBase"`
}

// EnquiryStatus defines model for EnquiryStatus.
type EnquiryStatus string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money Decimal amount with two places, e.g. "45.00"
type Money = string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerEmail  string         `json:"customerEmail"`
	CustomerName   string         `json:"customerName"`
	DeliveryCost   *Money         `json:"deliveryCost,omitempty"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	Items          []NewOrderItem `json:"items"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
	Title    string `json:"title"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt      time.Time          `json:"createdAt"`
	CustomerEmail  string             `json:"customerEmail"`
	CustomerName   string             `json:"customerName"`
	DeliveryCost   Money              `json:"deliveryCost"`
	DeliveryMethod DeliveryMethod     `json:"deliveryMethod"`
	Id             openapi_types.UUID `json:"id"`
	Items          []OrderItem        `json:"items"`
	Progress       Progress           `json:"progress"`
	Status         OrderStatus        `json:"status"`
	Subtotal       Money              `json:"subtotal"`
	Total          Money              `json:"total"`
	TrackingNumber *string            `json:"trackingNumber,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	LineTotal Money  `json:"lineTotal"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
	Title     string `json:"title"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Progress defines model for Progress.
type Progress struct {
	CurrentIndex         int            `json:"currentIndex"`
	Next                 *OrderStatus   `json:"next,omitempty"`
	PromptTrackingNumber bool           `json:"promptTrackingNumber"`
	Steps                []ProgressStep `json:"steps"`
}

// ProgressStep defines model for ProgressStep.
type ProgressStep struct {
	State  ProgressStepState `json:"state"`
	Status OrderStatus       `json:"status"`
}

// ProgressStepState defines model for ProgressStep.State.
type ProgressStepState string

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// GetEnquiriesParams defines parameters for GetEnquiries.
type GetEnquiriesParams struct {
	Status *EnquiryStatus `form:"status,omitempty" json:"status,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// PreviewBespokeJSONRequestBody defines body for PreviewBespoke for application/json ContentType.
type PreviewBespokeJSONRequestBody = BespokeForm

// SubmitEnquiryJSONRequestBody defines body for SubmitEnquiry for application/json ContentType.
type SubmitEnquiryJSONRequestBody = BespokeForm

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AdvanceOrderStatusJSONRequestBody defines body for AdvanceOrderStatus for application/json ContentType.
type AdvanceOrderStatusJSONRequestBody = AdvanceStatus
