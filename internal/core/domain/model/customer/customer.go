// Package customer provides the Customer aggregate for the order management
// system. Customers participate in new orders only while active; they are
// soft-deactivated and reactivated, never removed.
package customer

import (
	"errors"
	"strings"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer or RestoreCustomer factory functions.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrCustomerIDAlreadyAssigned is returned when attempting to assign an
	// identifier to a customer that already has one.
	ErrCustomerIDAlreadyAssigned = errors.New("customer already has an identifier")
)

// Customer represents a registered customer of the marketplace.
//
// Invariants:
//   - Name and email are required; the email must look like an address
//   - Email is unique across all customers (enforced by the repository)
//   - Deactivation is a flag flip, never a deletion
type Customer struct {
	id      kernel.ID
	name    string
	email   string
	phone   string
	address string
	active  bool

	isConstructed bool
}

// NewCustomer creates an active customer that has not been persisted yet.
// The identifier stays unassigned until the repository stores the customer.
//
// Returns:
//   - *Customer: the created customer if all validations pass
//   - error: validation error if name or email is missing or malformed
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	customer := &Customer{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	customer.phone = strings.TrimSpace(phone)
	customer.address = strings.TrimSpace(address)
	return customer, nil
}

// RestoreCustomer reconstructs a customer from its persisted state.
// Used by repositories when loading from the database.
func RestoreCustomer(id kernel.ID, name, email, phone, address string, active bool) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	customer, err := NewCustomer(name, email, phone, address)
	if err != nil {
		return nil, err
	}

	customer.id = id
	customer.active = active
	return customer, nil
}

// Validate ensures the Customer was created through a factory function.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier on a newly persisted
// customer. Fails if an identifier was already assigned.
func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.id.IsZero() {
		return ErrCustomerIDAlreadyAssigned
	}

	c.id = id
	return nil
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's identifier (zero until persisted).
func (c *Customer) ID() kernel.ID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's unique email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number (may be empty).
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address (may be empty).
func (c *Customer) Address() string {
	return c.address
}

// IsActive reports whether the customer may place new orders.
func (c *Customer) IsActive() bool {
	return c.active
}

// Activate re-enables a previously deactivated customer.
func (c *Customer) Activate() {
	c.active = true
}

// Deactivate soft-deletes the customer. Existing orders are unaffected;
// new orders are rejected while inactive.
func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = strings.ToLower(email)
	return nil
}
