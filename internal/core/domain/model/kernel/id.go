package kernel

import (
	"fmt"
	"strconv"

	"deliverytech/internal/pkg/errs"
)

// ID is the identifier of a persisted entity. Identifiers are opaque
// 64-bit integers generated by the backing store; a valid ID is always
// positive. The zero value means "not assigned yet" and is carried by
// aggregates created in memory but not persisted.
type ID int64

// NewID creates an ID from a raw value supplied by a caller, for example
// a path parameter referencing an existing entity. The value must be
// positive.
//
// Returns:
//   - ID: the validated identifier
//   - error: ValueIsInvalidError if the value is not positive
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ID refers to a persisted entity.
// The unassigned zero value and negative values are invalid.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not a positive identifier", int64(id)))
	}
	return nil
}

// IsZero reports whether the ID has not been assigned by the store yet.
func (id ID) IsZero() bool {
	return id == 0
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Int64 returns the raw identifier value for persistence and transport.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
