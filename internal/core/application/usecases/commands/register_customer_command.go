package commands

import (
	"errors"
	"strings"

	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new customer.
// The email address must not already be registered; the handler enforces
// uniqueness.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// Name and email are required; phone and address are optional.
func NewRegisterCustomerCommand(name, email, phone, address string) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	command.phone = strings.TrimSpace(phone)
	command.address = strings.TrimSpace(address)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the customer's name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c RegisterCustomerCommand) Address() string {
	return c.address
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = strings.TrimSpace(email)
	return nil
}
