package order

import (
	"errors"
	"fmt"
	"strings"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/errs"
	"wreaths/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line: a catalogue title, how many were bought and the unit price paid.
type Item struct {
	guard.ConstructorGuard
	title    string
	quantity int
	price    kernel.Money
}

func NewItem(title string, quantity int, price kernel.Money) (Item, error) {
	item := Item{ConstructorGuard: guard.NewConstructorGuard()}
	if err := errors.Join(
		item.setTitle(title),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Title() string {
	return i.title
}

func (i Item) Quantity() int {
	return i.quantity
}

// Price is the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// LineTotal is price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.price.Times(i.quantity)
}

func (i Item) Validate() error {
	return i.ConstructorGuard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	i.title = title
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	i.price = price
	return nil
}
