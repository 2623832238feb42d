// Package orderrepo implements order persistence over GORM. Orders and
// their lines live in separate tables; lines are written once at insert
// and never change afterwards.
package orderrepo

import (
	"time"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order. The version
// column backs the optimistic concurrency guard in Update.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64           `gorm:"not null;index"`
	RestaurantID int64           `gorm:"not null;index"`
	TotalValue   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status       string          `gorm:"not null;index"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	Notes        string
	Version      int            `gorm:"not null"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one persisted order line with its unit price snapshot.
type OrderLineDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity  int             `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderLineDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:   aggregate.ID().Int64(),
			ProductID: line.ProductID().Int64(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		CustomerID:   aggregate.CustomerID().Int64(),
		RestaurantID: aggregate.RestaurantID().Int64(),
		TotalValue:   aggregate.TotalValue(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		Notes:        aggregate.Notes(),
		Version:      aggregate.Version(),
		Lines:        lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(kernel.ID(lineDTO.ProductID), lineDTO.UnitPrice, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID), kernel.ID(dto.CustomerID), kernel.ID(dto.RestaurantID),
		lines, dto.TotalValue, status, dto.CreatedAt, dto.Notes, dto.Version)
}
