// Package productrepo implements product persistence over GORM.
package productrepo

import (
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the database representation of a menu item.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Description  string
	Category     string
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Available    bool            `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Int64(),
		RestaurantID: aggregate.RestaurantID().Int64(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Category:     aggregate.Category(),
		Price:        aggregate.Price(),
		Available:    aggregate.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		kernel.ID(dto.ID), kernel.ID(dto.RestaurantID),
		dto.Name, dto.Description, dto.Category,
		dto.Price, dto.Available)
}
