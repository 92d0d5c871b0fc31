package order

import (
	"errors"
	"fmt"
	"strings"

	"wreaths/internal/pkg/errs"
	"wreaths/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the contact captured at checkout.
type Customer struct {
	guard.ConstructorGuard
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	c := Customer{ConstructorGuard: guard.NewConstructorGuard()}
	if err := errors.Join(c.setName(name), c.setEmail(email)); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

func (c Customer) Validate() error {
	return c.ConstructorGuard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("customerEmail", fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}
