package order

import (
	"errors"
	"fmt"
)

// ErrInvalidDeliveryMethod is returned for any delivery method other than standard or collection.
var ErrInvalidDeliveryMethod = errors.New("invalid delivery method")

// DeliveryMethod decides how the order reaches the customer, and with it the status flow.
type DeliveryMethod int

const (
	DeliveryUnknown DeliveryMethod = iota
	// Standard ships to the customer's address.
	Standard
	// Collection is picked up in person from the workshop.
	Collection
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		Standard:   "standard",
		Collection: "collection",
	}
}

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	for method, name := range getDeliveryMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return DeliveryUnknown, fmt.Errorf("%w: %q", ErrInvalidDeliveryMethod, s)
}

func (m DeliveryMethod) Validate() error {
	if _, ok := getDeliveryMethodStrings()[m]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidDeliveryMethod, m)
	}
	return nil
}

func (m DeliveryMethod) String() string {
	if s, ok := getDeliveryMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}
