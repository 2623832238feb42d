// Package restaurant provides the Restaurant aggregate. A restaurant owns a
// catalog of products, charges a delivery fee on every order, and carries a
// rating between 0 and 5. Inactive restaurants cannot take new orders.
package restaurant

import (
	"errors"
	"strings"
	"time"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Rating bounds. A rating outside [RatingMin, RatingMax] is rejected with
// a ValueIsOutOfRangeError, which callers surface as a business rule violation.
var (
	RatingMin = decimal.NewFromInt(0)
	RatingMax = decimal.NewFromInt(5)

	// defaultRating is applied when a restaurant is created without one.
	defaultRating = decimal.NewFromInt(5)
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through the NewRestaurant or RestoreRestaurant factories.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrRestaurantIDAlreadyAssigned is returned when attempting to assign an
	// identifier to a restaurant that already has one.
	ErrRestaurantIDAlreadyAssigned = errors.New("restaurant already has an identifier")
)

// Restaurant represents a marketplace restaurant.
//
// Invariants:
//   - Name is required
//   - Delivery fee is non-negative
//   - Rating lies in [0, 5]
type Restaurant struct {
	id          kernel.ID
	name        string
	category    string
	address     string
	deliveryFee decimal.Decimal
	rating      decimal.Decimal
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// NewRestaurant creates an active restaurant that has not been persisted yet.
// A zero rating argument means "unset" and defaults to 5.0; stored ratings
// are restored verbatim through RestoreRestaurant.
func NewRestaurant(name, category, address string, deliveryFee, rating decimal.Decimal) (*Restaurant, error) {
	if rating.IsZero() {
		rating = defaultRating
	}
	return newRestaurant(name, category, address, deliveryFee, rating)
}

// RestoreRestaurant reconstructs a restaurant from its persisted state.
// The rating is taken as stored; a legitimate 0 stays 0.
func RestoreRestaurant(
	id kernel.ID,
	name, category, address string,
	deliveryFee, rating decimal.Decimal,
	active bool,
	createdAt time.Time,
) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	restaurant, err := newRestaurant(name, category, address, deliveryFee, rating)
	if err != nil {
		return nil, err
	}

	restaurant.id = id
	restaurant.active = active
	restaurant.createdAt = createdAt
	return restaurant, nil
}

func newRestaurant(name, category, address string, deliveryFee, rating decimal.Decimal) (*Restaurant, error) {
	restaurant := &Restaurant{
		active:        true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		restaurant.setName(name),
		restaurant.setDeliveryFee(deliveryFee),
		restaurant.SetRating(rating),
	); err != nil {
		return nil, err
	}

	restaurant.category = strings.TrimSpace(category)
	restaurant.address = strings.TrimSpace(address)
	return restaurant, nil
}

// Validate ensures the Restaurant was created through a factory function.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier on a newly persisted
// restaurant. Fails if an identifier was already assigned.
func (r *Restaurant) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !r.id.IsZero() {
		return ErrRestaurantIDAlreadyAssigned
	}

	r.id = id
	return nil
}

// ID returns the restaurant's identifier (zero until persisted).
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Category returns the restaurant's cuisine category.
func (r *Restaurant) Category() string {
	return r.category
}

// Address returns the restaurant's address.
func (r *Restaurant) Address() string {
	return r.address
}

// DeliveryFee returns the fee added to every order total.
func (r *Restaurant) DeliveryFee() decimal.Decimal {
	return r.deliveryFee
}

// Rating returns the restaurant's rating in [0, 5].
func (r *Restaurant) Rating() decimal.Decimal {
	return r.rating
}

// IsActive reports whether the restaurant may take new orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// CreatedAt returns the registration timestamp.
func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// SetRating replaces the rating.
//
// Returns ValueIsOutOfRangeError if the rating falls outside [0, 5].
func (r *Restaurant) SetRating(rating decimal.Decimal) error {
	if rating.LessThan(RatingMin) || rating.GreaterThan(RatingMax) {
		return errs.NewValueIsOutOfRangeError("rating", rating.String(), RatingMin.String(), RatingMax.String())
	}
	r.rating = rating
	return nil
}

// SetActive opens or closes the restaurant for new orders.
func (r *Restaurant) SetActive(active bool) {
	r.active = active
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = strings.TrimSpace(name)
	return nil
}

func (r *Restaurant) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			errors.New(fee.String()+" is negative"))
	}
	r.deliveryFee = fee
	return nil
}
