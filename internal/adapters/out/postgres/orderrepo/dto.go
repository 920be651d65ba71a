package orderrepo

import (
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       int64          `gorm:"not null;index"`
	RestaurantID int64          `gorm:"not null;index"`
	TotalPrice   int            `gorm:"type:int;not null"`
	Address      string         `gorm:"type:varchar(512)"`
	Comment      string         `gorm:"type:text"`
	Status       string         `gorm:"type:varchar(32);not null;index"`
	CreatedAt    time.Time      `gorm:"not null;index"`
	AcceptedAt   *time.Time
	EtaMinutes   *int           `gorm:"type:int"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"type:int;not null"`
	DishID   int64     `gorm:"not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Price    int       `gorm:"type:int;not null"`
	Qty      int       `gorm:"type:int;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// Timestamps are stored in UTC so range filters compare correctly on every driver.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			Position: i,
			DishID:   item.DishID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Qty:      item.Qty(),
		})
	}

	var acceptedAt *time.Time
	if at := aggregate.AcceptedAt(); at != nil {
		utc := at.UTC()
		acceptedAt = &utc
	}

	return OrderDTO{
		ID:           orderID,
		UserID:       aggregate.UserID(),
		RestaurantID: aggregate.RestaurantID(),
		TotalPrice:   aggregate.TotalPrice(),
		Address:      aggregate.Address(),
		Comment:      aggregate.Comment(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt().UTC(),
		AcceptedAt:   acceptedAt,
		EtaMinutes:   aggregate.EtaMinutes(),
		Items:        items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.DishID, itemDTO.Name, itemDTO.Price, itemDTO.Qty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		dto.RestaurantID,
		items,
		dto.TotalPrice,
		dto.Address,
		dto.Comment,
		status,
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.EtaMinutes,
	)
}
