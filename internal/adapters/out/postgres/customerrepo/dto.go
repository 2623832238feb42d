// Package customerrepo implements customer persistence over GORM.
package customerrepo

import (
	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/core/domain/model/kernel"
)

// CustomerDTO is the database representation of a customer. Email carries
// a unique index; registration relies on it under concurrency.
type CustomerDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null;uniqueIndex"`
	Phone   string
	Address string
	Active  bool `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      aggregate.ID().Int64(),
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		Phone:   aggregate.Phone(),
		Address: aggregate.Address(),
		Active:  aggregate.IsActive(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(
		kernel.ID(dto.ID), dto.Name, dto.Email, dto.Phone, dto.Address, dto.Active)
}
