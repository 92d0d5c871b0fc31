package bespoke

import (
	"fmt"
	"strings"

	"wreaths/internal/pkg/errs"
)

// Size is a wreath size key as submitted by the bespoke form.
type Size string

const (
	// SizeUnselected is what the form sends before a size is picked.
	SizeUnselected Size = ""
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra-large"
	// SizeCustom is always quoted by hand.
	SizeCustom Size = "custom"
)

// Sizes lists the selectable sizes, smallest first.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge, SizeCustom}
}

// ParseSize accepts a selectable size key, ignoring surrounding whitespace.
// The unselected value is rejected.
func ParseSize(s string) (Size, error) {
	size := Size(strings.TrimSpace(s))
	if !size.IsKnown() {
		return SizeUnselected, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a wreath size", s))
	}
	return size, nil
}

func (s Size) IsKnown() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge, SizeCustom:
		return true
	default:
		return false
	}
}

func (s Size) String() string {
	return string(s)
}
