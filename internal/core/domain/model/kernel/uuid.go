package kernel

import (
	"fmt"

	"wreaths/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies an aggregate. The zero value is the nil UUID and never validates.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier for a newly placed order or enquiry.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any form accepted by uuid.Parse (hyphenated, braced, urn:uuid:).
// The nil UUID is rejected so a blank path parameter cannot address a record.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a UUID: %w", s, err))
	}
	id := UUID{id: parsed}
	if err = id.Validate(); err != nil {
		return UUID{}, err
	}
	return id, nil
}

// UUIDFrom wraps an already parsed uuid.UUID, e.g. one produced by a generated HTTP binding.
func UUIDFrom(v uuid.UUID) (UUID, error) {
	id := UUID{id: v}
	if err := id.Validate(); err != nil {
		return UUID{}, err
	}
	return id, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Value exposes the wrapped uuid.UUID for persistence and transport mapping.
func (u UUID) Value() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
