// Package restaurantrepo implements restaurant persistence over GORM.
package restaurantrepo

import (
	"time"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// RestaurantDTO is the database representation of a restaurant. Monetary
// columns use numeric(10,2) so values survive the round trip exactly.
type RestaurantDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Category    string
	Address     string
	DeliveryFee decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Rating      decimal.Decimal `gorm:"type:numeric(3,1);not null"`
	Active      bool            `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID().Int64(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category(),
		Address:     aggregate.Address(),
		DeliveryFee: aggregate.DeliveryFee(),
		Rating:      aggregate.Rating(),
		Active:      aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	return restaurant.RestoreRestaurant(
		kernel.ID(dto.ID), dto.Name, dto.Category, dto.Address,
		dto.DeliveryFee, dto.Rating, dto.Active, dto.CreatedAt)
}
