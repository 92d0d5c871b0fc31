package order

import (
	"fmt"

	"wreaths/internal/pkg/errs"
)

// Status is the fulfilment state of an order. Which statuses an order may take depends
// on its DeliveryMethod; see Flow.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Pending is the status of a freshly placed order.
	Pending

	// Processing means the wreath is being made up.
	Processing

	// Dispatched means the parcel has been handed to the carrier (standard delivery only).
	Dispatched

	// Delivered is terminal for standard delivery.
	Delivered

	// Collected is terminal for click-and-collect.
	Collected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Collected:  "collected",
	}
}

// ParseStatus converts the lowercase wire/storage name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// AllStatuses lists every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Dispatched, Delivered, Collected}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Collected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
