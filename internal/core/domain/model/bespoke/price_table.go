package bespoke

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultRibbonSurcharge is added to any priced size when the ribbon add-on is chosen.
const DefaultRibbonSurcharge = 5

var ErrCustomSizeIsPriced = errors.New("custom size must stay unpriced")

// PriceTable maps each size to its base price. Sizes absent from the table have no
// base price and therefore no estimate.
type PriceTable struct {
	basePrices      map[Size]kernel.Money
	ribbonSurcharge kernel.Money
}

// DefaultPriceTable returns the published prices: small 45, medium 55, large 70, extra-large 90,
// custom quoted, ribbon +5.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		basePrices: map[Size]kernel.Money{
			SizeSmall:      kernel.MustMoney("45"),
			SizeMedium:     kernel.MustMoney("55"),
			SizeLarge:      kernel.MustMoney("70"),
			SizeExtraLarge: kernel.MustMoney("90"),
		},
		ribbonSurcharge: kernel.MustMoney(fmt.Sprint(DefaultRibbonSurcharge)),
	}
}

// BasePrice returns the base price of size, false for custom, unselected or unknown sizes.
func (t PriceTable) BasePrice(size Size) (kernel.Money, bool) {
	price, ok := t.basePrices[size]
	return price, ok
}

func (t PriceTable) RibbonSurcharge() kernel.Money {
	return t.ribbonSurcharge
}

// Estimate returns basePrice(size) plus the ribbon surcharge when ribbon is set. It reports false,
// meaning "quote required", whenever size has no base price. There are no failure states.
func (t PriceTable) Estimate(size Size, ribbon bool) (kernel.Money, bool) {
	base, ok := t.BasePrice(size)
	if !ok {
		return kernel.Money{}, false
	}
	if ribbon {
		return base.Add(t.ribbonSurcharge), true
	}
	return base, true
}

// Estimate prices a selection against DefaultPriceTable.
func Estimate(size Size, ribbon bool) (kernel.Money, bool) {
	return DefaultPriceTable().Estimate(size, ribbon)
}

// priceFile is the YAML layout of a price override file:
//
//	ribbon_surcharge: 6
//	sizes:
//	  small: 48
//	  extra-large: 95.5
type priceFile struct {
	RibbonSurcharge *decimal.Decimal            `yaml:"ribbon_surcharge"`
	Sizes           map[string]*decimal.Decimal `yaml:"sizes"`
}

// LoadPriceTable overlays the YAML in r on top of DefaultPriceTable. Only known size keys are
// accepted, prices must be non-negative, and custom may be listed only without a price.
func LoadPriceTable(r io.Reader) (PriceTable, error) {
	var file priceFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return PriceTable{}, fmt.Errorf("decode price table: %w", err)
	}

	table := DefaultPriceTable()
	table.basePrices = maps.Clone(table.basePrices)

	var errList []error
	if file.RibbonSurcharge != nil {
		surcharge, err := kernel.NewMoney(*file.RibbonSurcharge)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ribbon_surcharge", err))
		} else {
			table.ribbonSurcharge = surcharge
		}
	}
	for key, price := range file.Sizes {
		size, err := ParseSize(key)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if size == SizeCustom {
			if price != nil {
				errList = append(errList, ErrCustomSizeIsPriced)
			}
			continue
		}
		if price == nil {
			delete(table.basePrices, size)
			continue
		}
		money, err := kernel.NewMoney(*price)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(key, err))
			continue
		}
		table.basePrices[size] = money
	}
	if err := errors.Join(errList...); err != nil {
		return PriceTable{}, err
	}
	return table, nil
}

// LoadPriceTableFile reads an override file from disk. An empty path yields DefaultPriceTable.
func LoadPriceTableFile(path string) (PriceTable, error) {
	if path == "" {
		return DefaultPriceTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return PriceTable{}, fmt.Errorf("open price table: %w", err)
	}
	defer f.Close()
	return LoadPriceTable(f)
}
